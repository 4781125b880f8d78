package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/monet/internal/colour"
	"github.com/jmylchreest/monet/internal/colour/scheme"
	imageutil "github.com/jmylchreest/monet/internal/image"
	"github.com/jmylchreest/monet/internal/theme"
)

var (
	// Theme command flags
	themeHex     string
	themeImage   string
	themeContent bool
	themeOut     string
	themePreview bool
)

// themeCmd represents the theme command
var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Derive a complete colour theme from a source colour",
	Long: `Derive light and dark colour schemes from a single source colour.

The source colour is given directly as a hex string, or picked from an
image by quantising its pixels and scoring the candidates for theme
suitability. The result is a JSON theme document: both schemes with every
role assigned, plus the five tonal palettes at the standard tone stops.

Examples:
  # From a hex colour
  monet theme --hex '#4285f4'

  # From an image (file, directory or URL)
  monet theme --image wallpaper.jpg

  # Preserve the source colour's own chroma relationships
  monet theme --hex '#80cbc4' --content

  # Write to a file and show a terminal preview
  monet theme --image ~/Pictures/walls --out theme.json --preview`,
	RunE: runTheme,
}

func init() {
	themeCmd.Flags().StringVar(&themeHex, "hex", "", "source colour as a hex string (e.g. '#4285f4')")
	themeCmd.Flags().StringVarP(&themeImage, "image", "i", "", "image to pick the source colour from (file, directory or URL)")
	themeCmd.Flags().BoolVar(&themeContent, "content", false, "keep the source colour's chroma instead of the fixed design offsets")
	themeCmd.MarkFlagsMutuallyExclusive("hex", "image")
	addOutputFlags(themeCmd.Flags())
}

// addOutputFlags registers the destination and preview flags.
func addOutputFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&themeOut, "out", "o", "", "write JSON to a file instead of stdout")
	fs.BoolVar(&themePreview, "preview", false, "render colour swatches on the terminal")
}

// runTheme executes the theme command.
func runTheme(cmd *cobra.Command, args []string) error {
	source, err := resolveSource(cmd)
	if err != nil {
		return err
	}
	log.Debug("resolved source colour", "colour", source.Hex())

	var t scheme.Theme
	if themeContent {
		t = scheme.FromContentColor(source)
	} else {
		t = scheme.FromSourceColor(source)
	}

	doc := theme.FromTheme(t)
	data, err := doc.MarshalIndent()
	if err != nil {
		return err
	}

	if themePreview {
		fmt.Println(renderThemePreview(t))
	}

	if themeOut != "" {
		if err := writeFile(themeOut, append(data, '\n')); err != nil {
			return fmt.Errorf("failed to write theme: %w", err)
		}
		log.Debug("wrote theme document", "path", themeOut)
		return nil
	}

	fmt.Println(string(data))
	return nil
}

// resolveSource determines the source colour from the hex or image flag.
func resolveSource(cmd *cobra.Command) (colour.ARGB, error) {
	switch {
	case themeHex != "":
		source, err := colour.ParseHex(themeHex)
		if err != nil {
			return 0, err
		}
		return source, nil

	case themeImage != "":
		path, err := imageutil.ResolvePath(themeImage)
		if err != nil {
			return 0, err
		}
		log.Debug("loading image", "path", path)

		img, err := imageutil.NewSmartLoader().Load(cmd.Context(), path)
		if err != nil {
			return 0, err
		}
		return imageutil.SourceColor(img)

	default:
		return 0, fmt.Errorf("a source colour is required: pass --hex or --image")
	}
}

// writeFile writes content to a file, creating directories as needed.
func writeFile(path string, content []byte) error {
	// Expand ~ to home directory
	if len(path) > 1 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	return os.WriteFile(path, content, 0644)
}
