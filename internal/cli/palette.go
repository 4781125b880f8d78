package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/monet/internal/colour"
	"github.com/jmylchreest/monet/internal/colour/palette"
)

var (
	// Palette command flags
	paletteTones []float64
)

// paletteCmd represents the palette command
var paletteCmd = &cobra.Command{
	Use:   "palette <hex>",
	Short: "Print the tonal palette of a colour",
	Long: `Print the tonal palette of a colour: the family of colours that share
its hue and chroma across the tone scale, from tone 0 (black) to tone 100
(white).

Examples:
  # Standard tone stops
  monet palette '#4285f4'

  # Custom tones
  monet palette '#4285f4' --tones 25,50,75`,
	Args: cobra.ExactArgs(1),
	RunE: runPalette,
}

func init() {
	paletteCmd.Flags().Float64SliceVar(&paletteTones, "tones", nil, "tone values to print (default: the standard stops)")
	paletteCmd.Flags().BoolVar(&themePreview, "preview", false, "render colour swatches on the terminal")
}

// runPalette executes the palette command.
func runPalette(cmd *cobra.Command, args []string) error {
	source, err := colour.ParseHex(args[0])
	if err != nil {
		return err
	}

	pal := palette.FromARGB(source)
	log.Debug("derived palette", "hue", pal.Hue(), "chroma", pal.Chroma())

	tones := paletteTones
	if len(tones) == 0 {
		tones = palette.StandardTones
	}

	if themePreview {
		fmt.Println(renderPalettePreview(pal, tones))
		return nil
	}

	stops := make(map[string]string, len(tones))
	for _, tone := range tones {
		stops[fmt.Sprintf("%g", tone)] = pal.Tone(tone).Hex()
	}
	data, err := json.MarshalIndent(stops, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal palette: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
