package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tmurray/go-whitted-raytracer/pkg/renderer"
	"github.com/tmurray/go-whitted-raytracer/pkg/scene"
	"github.com/tmurray/go-whitted-raytracer/pkg/tga"
)

const appName = "whitted"

var cfgFile string

// rootCmd renders a scene description to a TGA image
var rootCmd = &cobra.Command{
	Use:   appName + " [sceneFile]",
	Short: "Recursive whole-scene ray tracer",
	Long: `A recursive Whitted-style ray tracer. Reads a line-oriented scene
description (spheres, materials, lights, camera), traces the scene with
supersampling and optional depth-of-field dispersion, and writes an
uncompressed true-color TGA image.

Pass a scene file path, or "-" to read the scene from stdin. Without an
argument a built-in demo scene is rendered.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRender,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ./whitted.yaml)")

	rootCmd.Flags().StringP("output", "o", "out.tga", "output TGA file path")
	rootCmd.Flags().Int("width", 1024, "image width in pixels")
	rootCmd.Flags().Int("height", 768, "image height in pixels")
	rootCmd.Flags().Int("super-samples", 1, "square root of anti-aliasing samples per pixel")
	rootCmd.Flags().Int("depth-complexity", 1, "jittered sub-traces per sample for depth of field")
	rootCmd.Flags().Int("max-reflections", 0, "reflection budget override (0 = use scene setting)")
	rootCmd.Flags().Int("workers", 0, "parallel render workers (0 = CPU count)")
	rootCmd.Flags().Bool("flip", false, "flip the output image vertically")

	if err := viper.BindPFlags(rootCmd.Flags()); err != nil {
		panic(err)
	}
}

// initConfig reads in a config file and environment variables if set
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName(appName)
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("WHITTED")
	viper.AutomaticEnv()

	// A missing config file is fine; flags and defaults cover everything
	_ = viper.ReadInConfig()
}

// createScene loads the scene from a file, stdin ("-"), or falls back
// to the built-in demo scene when no argument is given.
func createScene(arg string) (*scene.Scene, error) {
	switch arg {
	case "":
		return scene.NewDefaultScene(), nil
	case "-":
		return scene.Load(os.Stdin)
	default:
		return scene.LoadFile(arg)
	}
}

func runRender(cmd *cobra.Command, args []string) error {
	sceneArg := ""
	if len(args) > 0 {
		sceneArg = args[0]
	}

	s, err := createScene(sceneArg)
	if err != nil {
		return err
	}

	config := renderer.DefaultConfig()
	config.Width = viper.GetInt("width")
	config.Height = viper.GetInt("height")
	config.SuperSamples = viper.GetInt("super-samples")
	config.DepthComplexity = viper.GetInt("depth-complexity")
	config.MaxReflections = viper.GetInt("max-reflections")
	config.NumWorkers = viper.GetInt("workers")

	logger := renderer.NewDefaultLogger()
	raytracer := renderer.NewRaytracer(s, config)

	startTime := time.Now()
	img, stats := raytracer.Render(logger)
	logger.Printf("Render completed in %v\n", time.Since(startTime))
	logger.Printf("Mean luminance: %.4f (spread %.4f)\n", stats.MeanLuminance, stats.StdDevLuminance)

	output := viper.GetString("output")
	if err := tga.WriteFile(output, img, viper.GetBool("flip")); err != nil {
		return err
	}

	logger.Printf("Render saved as %s\n", output)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
