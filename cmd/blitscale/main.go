// Command blitscale downscales an image with supersampled anti-aliasing.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/disintegration/imaging"

	blit "github.com/NathanRoyer/simd-blit"
	"github.com/NathanRoyer/simd-blit/scale"
)

func main() {
	var (
		in      = flag.String("in", "", "input image (PNG, JPEG, GIF, TIFF, BMP)")
		out     = flag.String("out", "out.png", "output file")
		factor  = flag.Int("factor", 2, "integer downscale factor (1-16)")
		width   = flag.Int("width", 0, "target width (overrides -factor, keeps aspect ratio)")
		subgrid = flag.Int("subgrid", 3, "subpixel grid per output pixel when -width is used")
		workers = flag.Int("workers", 0, "worker goroutines (0 = all cores)")
		counted = flag.Bool("counted", false, "average edge pixels over in-bounds samples only")
		verbose = flag.Bool("v", false, "debug logging to stderr")
	)
	flag.Parse()

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}
	if *verbose {
		blit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	img, err := imaging.Open(*in, imaging.AutoOrientation(true))
	if err != nil {
		log.Fatalf("open %s: %v", *in, err)
	}
	src := blit.FromImage(img)

	opts := []scale.Option{scale.WithWorkers(*workers)}
	if *counted {
		opts = append(opts, scale.WithCountedDivisor())
	}

	var result *blit.Pixmap
	if *width > 0 {
		outH := *width * src.Height() / src.Width()
		if outH < 1 {
			outH = 1
		}
		result, err = scale.DownscaleTo(src, *width, outH, *subgrid, opts...)
	} else {
		result, err = scale.Downscale(src, *factor, opts...)
	}
	if err != nil {
		log.Fatalf("downscale: %v", err)
	}

	if err := imaging.Save(result.ToImage(), *out); err != nil {
		log.Fatalf("save %s: %v", *out, err)
	}

	log.Printf("%s (%dx%d) -> %s (%dx%d)",
		*in, src.Width(), src.Height(), *out, result.Width(), result.Height())
}
