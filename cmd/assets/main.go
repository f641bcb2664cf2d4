// Command assets runs the external utility-CSS compiler over the view
// templates and records the hashed output in the asset manifest.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/micfx/starter/internal/assets"
	"github.com/micfx/starter/internal/build"
	"github.com/micfx/starter/internal/config"
)

func main() {
	cfg := config.Load()

	fmt.Println("MicFx Asset Build")
	fmt.Println()
	fmt.Printf("  Compiling %s with %s...\n", build.InputStylesheet, cfg.CSSCompiler)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	engine := build.NewEngine(cfg.CSSCompiler, assets.DefaultDistDir)
	result, err := engine.Run(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "build failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("  Wrote %s (%d bytes)\n", result.Stylesheet, result.Bytes)
	fmt.Printf("  Manifest entry app.css -> %s\n", result.Href)
	fmt.Println()
	fmt.Println("Build completed successfully")
}
