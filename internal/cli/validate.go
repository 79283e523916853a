package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aferrand/safpack/internal/filesystem"
	"github.com/aferrand/safpack/internal/validate"
	"github.com/aferrand/safpack/pkg/safpack"
)

var validateCmd = &cobra.Command{
	Use:   "validate <output_root>",
	Short: "Validate a SAF package tree for structural completeness",
	Long: `Validate re-walks each package directory under the given root and checks:
  - dublin_core.xml exists and parses as well-formed XML
  - required metadata fields are present and non-blank
  - the contents manifest exists
  - every file the manifest lists exists in the package

Validation is independent of the converter: it only reads the output tree.
A non-zero exit code signals that at least one package failed.

Example:
  safpack validate ./saf`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	root := args[0]
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return fmt.Errorf("%w: not a directory: %s", safpack.ErrInputNotFound, root)
	}

	v := validate.NewValidator(filesystem.NewOSFileSystem(), cfg.RequiredFields)
	report, err := v.ValidateTree(root)
	if err != nil {
		return err
	}

	printReport(root, report)
	if !report.OK() {
		return fmt.Errorf("%w: %d of %d package(s) have issues",
			safpack.ErrValidationFailed, len(report.Failures), report.Packages)
	}
	return nil
}

func printReport(root string, report validate.Report) {
	fmt.Printf("Validated %d package(s) in %s\n\n", report.Packages, root)

	if report.OK() {
		fmt.Println(passStyle.Render("All packages passed validation"))
		return
	}

	fmt.Println(failStyle.Render("Issues found:"))
	fmt.Println()
	for _, pkg := range report.Failures {
		fmt.Println(packageStyle.Render("Package " + pkg.Package + ":"))
		for _, issue := range pkg.Issues {
			fmt.Println(issueStyle.Render("  - " + issue))
		}
		fmt.Println()
	}
	fmt.Println(mutedStyle.Render("Validation complete."))
}
