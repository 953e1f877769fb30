// Command wincalc derives Winograd minimal-filtering transforms F(n, r)
// from a set of interpolation points, using exact arithmetic throughout.
//
// Usage:
//
//	wincalc -n 2 -r 3 -points 0,1,-1
//	wincalc -n 4 -r 3 -points 0,1,-1,2,-2 -fractions-in output
//	wincalc -n 4 -r 3 -chebyshev -precision 15
//	wincalc -server -port 8080
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/agbru/wincalc/internal/app"
	apperrors "github.com/agbru/wincalc/internal/errors"
)

func main() {
	os.Exit(run())
}

// run contains the application logic, separated from main to allow the
// deferred cleanup handlers to execute before os.Exit.
func run() int {
	// Handle version flag before any configuration parsing
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout)
		return apperrors.ExitSuccess
	}

	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			return apperrors.ExitSuccess
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return apperrors.ExitErrorConfig
	}

	return application.Run(context.Background(), os.Stdout)
}
