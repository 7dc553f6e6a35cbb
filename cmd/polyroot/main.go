// Command polyroot solves polynomial equations from the shell.
//
// Coefficients are given in natural order, leading coefficient first:
//
//	polyroot solve 1 -6 11 -6
//	polyroot solve --method aberth 1 0 0 0 1
package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"honnef.co/go/polyroot"
)

const version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "polyroot",
	Short:         "Compute all real and complex roots of polynomials",
	SilenceUsage:  true,
	SilenceErrors: false,
}

var (
	flagMethod  string
	flagJSON    bool
	flagVerbose bool
)

var solveCmd = &cobra.Command{
	Use:   "solve aₙ … a₁ a₀",
	Short: "Solve aₙ·xⁿ + … + a₁·x + a₀ = 0",
	Long: `Solve a polynomial equation given its coefficients in natural order,
leading coefficient first.

Cubics can be solved with any of the four implemented algorithms; every
other degree uses one of the simultaneous-iteration methods.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runSolve,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the polyroot version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "polyroot "+version)
	},
}

func init() {
	solveCmd.Flags().StringVarP(&flagMethod, "method", "m", "",
		"cubic algorithm: newton, cardano, durand-kerner, or aberth")
	solveCmd.Flags().BoolVar(&flagJSON, "json", false, "emit roots as JSON")
	solveCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false,
		"log solver diagnostics to stderr")
	rootCmd.AddCommand(solveCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runSolve(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		polyroot.Logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), nil))
	}
	coeffs := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return fmt.Errorf("coefficient %q: %w", arg, err)
		}
		coeffs[i] = v
	}
	roots, err := solve(coeffs, flagMethod)
	if err != nil {
		return err
	}
	if flagJSON {
		return writeJSON(cmd, roots)
	}
	for _, root := range roots {
		fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatComplex(root, 'g', -1, 128))
	}
	return nil
}

// solve dispatches on the polynomial's degree. Leading zero coefficients are
// stripped first, so "0 1 0 -1" solves the quadratic it actually is.
func solve(coeffs []float64, method string) ([]complex128, error) {
	for len(coeffs) > 0 && coeffs[0] == 0 {
		coeffs = coeffs[1:]
	}
	switch len(coeffs) {
	case 0, 1:
		return nil, fmt.Errorf("a constant has no roots to solve for")
	case 2:
		return polyroot.SolveLinear(coeffs[0], coeffs[1]), nil
	case 3:
		return polyroot.SolveQuadratic(coeffs[0], coeffs[1], coeffs[2]), nil
	case 4:
		switch method {
		case "", "cardano":
			return polyroot.SolveCubicCardano(coeffs[0], coeffs[1], coeffs[2], coeffs[3]), nil
		case "newton":
			return polyroot.SolveCubicNewtonFactor(coeffs[0], coeffs[1], coeffs[2], coeffs[3]), nil
		case "durand-kerner":
			return polyroot.SolveCubicDurandKerner(coeffs[0], coeffs[1], coeffs[2], coeffs[3]), nil
		case "aberth":
			return polyroot.SolveCubicAberthEhrlich(coeffs[0], coeffs[1], coeffs[2], coeffs[3]), nil
		default:
			return nil, fmt.Errorf("unknown cubic method %q", method)
		}
	case 5:
		switch method {
		case "durand-kerner":
			return polyroot.SolveQuarticDurandKerner(coeffs[0], coeffs[1], coeffs[2], coeffs[3], coeffs[4]), nil
		case "", "aberth":
			return polyroot.SolveQuarticAberthEhrlich(coeffs[0], coeffs[1], coeffs[2], coeffs[3], coeffs[4]), nil
		default:
			return nil, fmt.Errorf("method %q cannot solve quartics", method)
		}
	default:
		monic := make([]complex128, len(coeffs))
		for i, c := range coeffs {
			monic[len(coeffs)-1-i] = complex(c/coeffs[0], 0)
		}
		monic[len(coeffs)-1] = 1
		switch method {
		case "durand-kerner":
			return polyroot.SolveDurandKerner(monic), nil
		case "", "aberth":
			return polyroot.SolveAberthEhrlich(monic), nil
		default:
			return nil, fmt.Errorf("method %q cannot solve degree %d", method, len(coeffs)-1)
		}
	}
}

func writeJSON(cmd *cobra.Command, roots []complex128) error {
	type jsonRoot struct {
		Re float64 `json:"re"`
		Im float64 `json:"im"`
	}
	out := make([]jsonRoot, len(roots))
	for i, root := range roots {
		out[i] = jsonRoot{Re: real(root), Im: imag(root)}
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
