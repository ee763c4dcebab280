package ai

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// InputSize is the square canvas a model would consume.
const InputSize = 224

// preprocess decodes raw and scales it onto an InputSize x InputSize canvas.
func preprocess(raw []byte) (*image.RGBA, error) {
	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	dst := image.NewRGBA(image.Rect(0, 0, InputSize, InputSize))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst, nil
}

// heatmapCell is the side of one heatmap cell in canvas pixels.
const heatmapCell = 10

// heatmapGrid returns rows x cols random intensities in [30, 100]; the shape
// follows the canvas, the values do not.
func heatmapGrid(r Rand, bounds image.Rectangle) [][]int {
	rows, cols := bounds.Dy()/heatmapCell, bounds.Dx()/heatmapCell
	grid := make([][]int, rows)
	for y := range grid {
		row := make([]int, cols)
		for x := range row {
			row[x] = intBetween(r, 30, 100)
		}
		grid[y] = row
	}
	return grid
}

func encodeHeatmap(grid [][]int) (string, error) {
	b, err := json.Marshal(grid)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// DecodeHeatmap reverses the transport encoding of DiagnosisResult.Heatmap.
func DecodeHeatmap(s string) ([][]int, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, err
	}
	var grid [][]int
	if err := json.Unmarshal(b, &grid); err != nil {
		return nil, err
	}
	return grid, nil
}
