// Package orchestration runs the self-test harness for several division
// strategies concurrently and turns the results into an exit code. It talks
// to the presentation layer only through ProgressReporter, ResultPresenter
// and ErrorHandler.
package orchestration
