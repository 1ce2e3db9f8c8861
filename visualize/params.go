package visualize

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/swdee/go-cafvis/pose"
)

// EnvPrefix is the prefix of environment variables overriding CAFParams, eg:
// CAFVIS_SHOW_REGRESSIONS=true
const EnvPrefix = "CAFVIS_"

// Toggles are the four independent display switches of the CAF visualizer
type Toggles struct {
	// Background draws the no-connection channel of target fields
	Background bool `koanf:"background"`
	// Confidences draws the per connection confidence heatmaps
	Confidences bool `koanf:"confidences"`
	// Regressions draws the regression arrows and scale boxes
	Regressions bool `koanf:"regressions"`
	// Margin adds margin boxes to the regression layer
	Margin bool `koanf:"margin"`
}

// Limits is a value range mapped onto a colormap
type Limits struct {
	Min float64 `koanf:"min"`
	Max float64 `koanf:"max"`
}

// CAFParams defines the struct containing the CAF visualizer parameters
type CAFParams struct {
	// Stride is the resolution ratio between the field and the image
	Stride int `koanf:"stride"`
	// Keypoints are the keypoint names, required to visualize targets
	Keypoints []string `koanf:"keypoints"`
	// Skeleton are the connections of the head, required to visualize targets
	Skeleton pose.Skeleton `koanf:"skeleton"`
	// Show holds the display toggles
	Show Toggles `koanf:"show"`
	// RegressionLimits is the confidence range mapped onto the arrow and box
	// colormaps
	RegressionLimits Limits `koanf:"regressionlimits"`
	// Threshold is the minimum confidence a cell needs for its arrows and
	// boxes to be drawn when a confidence field is given
	Threshold float64 `koanf:"threshold"`
}

// CAFDefaultParams returns an instance of CAFParams configured with default
// values:
// - Stride: 1
// - No keypoints or skeleton
// - All display toggles off
// - Regression Limits: 0.5 to 1.0
// - Threshold: 0.5
func CAFDefaultParams() CAFParams {
	return CAFParams{
		Stride: 1,
		Show: Toggles{
			Background:  false,
			Confidences: false,
			Regressions: false,
			Margin:      false,
		},
		RegressionLimits: Limits{Min: 0.5, Max: 1.0},
		Threshold:        0.5,
	}
}

// CAFCOCOParams returns the default parameters for a head trained on the
// COCO person keypoints with the given stride
func CAFCOCOParams(stride int) CAFParams {
	p := CAFDefaultParams()
	p.Stride = stride
	p.Keypoints = pose.COCOKeypoints
	p.Skeleton = pose.COCOSkeleton
	return p
}

// Validate checks the parameters are usable
func (p CAFParams) Validate() error {

	if p.Stride < 1 {
		return fmt.Errorf("stride must be 1 or greater, got %d", p.Stride)
	}

	if p.RegressionLimits.Max <= p.RegressionLimits.Min {
		return fmt.Errorf("regression limits max %f must be greater than min %f",
			p.RegressionLimits.Max, p.RegressionLimits.Min)
	}

	if len(p.Keypoints) == 0 {
		return nil
	}

	for i, pair := range p.Skeleton {
		for _, k := range pair {
			if k < 1 || k > len(p.Keypoints) {
				return fmt.Errorf("skeleton connection %d references keypoint %d of %d",
					i, k, len(p.Keypoints))
			}
		}
	}

	return nil
}

// LoadParams builds CAFParams from the defaults, the optional YAML file and
// environment variables prefixed with EnvPrefix, in that order of precedence
func LoadParams(filePath string) (CAFParams, error) {

	k := koanf.New(".")
	def := CAFDefaultParams()

	if err := k.Load(confmap.Provider(map[string]any{
		"stride":               def.Stride,
		"show.background":      def.Show.Background,
		"show.confidences":     def.Show.Confidences,
		"show.regressions":     def.Show.Regressions,
		"show.margin":          def.Show.Margin,
		"regressionlimits.min": def.RegressionLimits.Min,
		"regressionlimits.max": def.RegressionLimits.Max,
		"threshold":            def.Threshold,
	}, "."), nil); err != nil {
		return CAFParams{}, fmt.Errorf("error loading default params: %w", err)
	}

	if filePath != "" {
		if err := k.Load(file.Provider(filePath), yaml.Parser()); err != nil {
			return CAFParams{}, fmt.Errorf("error loading params file: %w", err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", ".")
	}), nil); err != nil {
		return CAFParams{}, fmt.Errorf("error loading params environment: %w", err)
	}

	var p CAFParams

	if err := k.Unmarshal("", &p); err != nil {
		return CAFParams{}, fmt.Errorf("error decoding params: %w", err)
	}

	if err := p.Validate(); err != nil {
		return CAFParams{}, err
	}

	return p, nil
}
