// Command contour traces the outlines of a bitmap image and writes
// them out as an SVG document.
package main

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/contour"

	// Image formats accepted on the command line.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

var (
	flagOutput    string
	flagThreshold uint8
	flagScale     float64
	flagClose     bool
	flagInvert    bool
	flagVerbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "contour [image]",
	Short: "Trace bitmap boundaries into SVG paths",
	Long: `Reads a raster image (PNG, GIF, JPEG, BMP or TIFF), classifies each
pixel as foreground or background by a luminance threshold, traces the
boundaries of the foreground regions and writes the result as an SVG
document. Outlines are traced clockwise and holes counterclockwise, so
the default even-odd fill renders them correctly.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(args[0])
	},
}

func init() {
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "-", "output file (\"-\" for stdout)")
	rootCmd.Flags().Uint8VarP(&flagThreshold, "threshold", "t", 128, "luminance cutoff for foreground")
	rootCmd.Flags().Float64VarP(&flagScale, "scale", "s", 1, "resample factor applied before tracing")
	rootCmd.Flags().BoolVarP(&flagClose, "close", "z", true, "close each path with a Z command")
	rootCmd.Flags().BoolVar(&flagInvert, "invert", false, "treat dark pixels as foreground")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "log tracing diagnostics to stderr")
}

func run(name string) error {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	if flagVerbose {
		log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		contour.SetLogger(log)
	}

	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	src, format, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}

	gray := contour.FromImageScaled(src, flagScale)
	if flagInvert {
		invert(gray)
	}
	contour.Threshold(gray, flagThreshold)

	log.Debug("image loaded", "format", format, "bounds", gray.Bounds())

	d, err := contour.TraceImage(gray, 255, flagClose)
	if err != nil {
		return err
	}

	out := io.Writer(os.Stdout)
	if flagOutput != "-" {
		of, err := os.Create(flagOutput)
		if err != nil {
			return err
		}
		defer of.Close()
		out = of
	}
	b := gray.Bounds()
	return writeSVG(out, b.Dx(), b.Dy(), d)
}

// invert flips the luminance of every pixel so that dark regions pass
// the foreground threshold.
func invert(img *image.Gray) {
	for i, v := range img.Pix {
		img.Pix[i] = 255 - v
	}
}

// writeSVG wraps the traced path commands in a minimal standalone SVG
// document.
func writeSVG(w io.Writer, width, height int, d string) error {
	_, err := fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d">
<path d=%q/>
</svg>
`, width, height, d)
	return err
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "contour:", err)
		os.Exit(1)
	}
}
