// Package report renders fitted models and evaluation metrics as markdown
// tables and plots.
//
// The statistical packages expose plain result structs; this package is the
// presentation seam that turns them into the artifacts a report embeds:
// parameter tables, RMSE and accuracy comparisons, confusion tables, a
// scatter plot with the fitted curve, and a box plot of cross-validation
// accuracies. Nothing here feeds back into fitting.
package report
