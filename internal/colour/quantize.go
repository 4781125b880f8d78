package colour

import (
	"fmt"
	"image"
	"math"
	"math/rand"
)

// Weighted is a candidate colour with the fraction of sampled pixels that
// clustered to it.
type Weighted struct {
	Color  ARGB
	Weight float64
}

// Quantizer reduces an image to a small set of weighted candidate colours
// using k-means clustering over sampled pixels.
type Quantizer struct {
	maxIterations int
	convergence   float64
	maxSamples    int
}

// NewQuantizer returns a Quantizer with defaults tuned for wallpapers:
// aggressive sampling and early convergence, since the scorer only needs
// cluster centroids, not a faithful requantisation.
func NewQuantizer() *Quantizer {
	return &Quantizer{
		maxIterations: 20,
		convergence:   2.0,
		maxSamples:    2000,
	}
}

// Quantize clusters the image's pixels into at most count weighted colours.
func (q *Quantizer) Quantize(img image.Image, count int) ([]Weighted, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	if count < 1 {
		return nil, fmt.Errorf("colour count must be at least 1, got %d", count)
	}
	if count > 256 {
		return nil, fmt.Errorf("colour count too large: %d (maximum: 256)", count)
	}

	pixels := q.samplePixels(img)
	if len(pixels) == 0 {
		return nil, fmt.Errorf("no opaque pixels found in image")
	}

	// Fewer distinct colours than requested clusters: weight each directly.
	distinct := map[ARGB]int{}
	for _, p := range pixels {
		distinct[p]++
	}
	if count >= len(distinct) {
		total := float64(len(pixels))
		out := make([]Weighted, 0, len(distinct))
		for c, n := range distinct {
			out = append(out, Weighted{Color: c, Weight: float64(n) / total})
		}
		return out, nil
	}

	centroids, weights := q.kmeans(pixels, count)
	out := make([]Weighted, len(centroids))
	for i, c := range centroids {
		out[i] = Weighted{
			Color:  FromRGB(uint8(c.r), uint8(c.g), uint8(c.b)),
			Weight: weights[i],
		}
	}
	return out, nil
}

// samplePixels grid-samples opaque pixels, capped at maxSamples.
func (q *Quantizer) samplePixels(img image.Image) []ARGB {
	bounds := img.Bounds()
	totalPixels := bounds.Dx() * bounds.Dy()

	step := 1
	if totalPixels > q.maxSamples {
		step = max(int(math.Sqrt(float64(totalPixels)/float64(q.maxSamples))), 1)
	}

	pixels := make([]ARGB, 0, q.maxSamples)
	for y := bounds.Min.Y; y < bounds.Max.Y; y += step {
		for x := bounds.Min.X; x < bounds.Max.X; x += step {
			_, _, _, a := img.At(x, y).RGBA()
			if a < 0xFFFF {
				continue
			}
			pixels = append(pixels, FromColor(img.At(x, y)))
			if len(pixels) >= q.maxSamples {
				return pixels
			}
		}
	}
	return pixels
}

type point3D struct {
	r, g, b float64
}

func (p point3D) distance(other point3D) float64 {
	dr := p.r - other.r
	dg := p.g - other.g
	db := p.b - other.b
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

func pointFromARGB(c ARGB) point3D {
	return point3D{r: float64(c.Red()), g: float64(c.Green()), b: float64(c.Blue())}
}

// kmeans clusters pixels into k centroids and returns the centroids with
// their normalised cluster weights.
func (q *Quantizer) kmeans(pixels []ARGB, k int) ([]point3D, []float64) {
	points := make([]point3D, len(pixels))
	for i, c := range pixels {
		points[i] = pointFromARGB(c)
	}

	centroids := q.initializeCentroids(points, k)
	assignments := make([]int, len(points))

	for iter := 0; iter < q.maxIterations; iter++ {
		changed := 0
		for i, point := range points {
			nearest := nearestCentroid(point, centroids)
			if assignments[i] != nearest {
				assignments[i] = nearest
				changed++
			}
		}
		if float64(changed)/float64(len(points)) < 0.01 {
			break
		}

		newCentroids := recalculateCentroids(points, assignments, k)
		totalMovement := 0.0
		for i := range centroids {
			totalMovement += centroids[i].distance(newCentroids[i])
		}
		centroids = newCentroids
		if totalMovement/float64(k) < q.convergence {
			break
		}
	}

	weights := make([]float64, k)
	for _, assignment := range assignments {
		weights[assignment]++
	}
	total := float64(len(assignments))
	for i := range weights {
		weights[i] /= total
	}
	return centroids, weights
}

// initializeCentroids seeds clusters with k-means++: each new centroid is
// chosen with probability proportional to its squared distance from the
// nearest existing one.
func (q *Quantizer) initializeCentroids(points []point3D, k int) []point3D {
	if len(points) == 0 || k == 0 {
		return nil
	}

	centroids := make([]point3D, 0, k)
	centroids = append(centroids, points[rand.Intn(len(points))])

	for len(centroids) < k {
		distances := make([]float64, len(points))
		totalDistance := 0.0
		for i, point := range points {
			minDist := math.MaxFloat64
			for _, centroid := range centroids {
				if d := point.distance(centroid); d < minDist {
					minDist = d
				}
			}
			distances[i] = minDist * minDist
			totalDistance += distances[i]
		}

		if totalDistance == 0 {
			// Remaining points coincide with existing centroids.
			last := centroids[len(centroids)-1]
			centroids = append(centroids, point3D{r: last.r + 0.1, g: last.g + 0.1, b: last.b + 0.1})
			continue
		}

		target := rand.Float64() * totalDistance
		cumulative := 0.0
		for i, dist := range distances {
			cumulative += dist
			if cumulative >= target {
				centroids = append(centroids, points[i])
				break
			}
		}
	}
	return centroids
}

func nearestCentroid(point point3D, centroids []point3D) int {
	minDist := math.MaxFloat64
	nearest := 0
	for i, centroid := range centroids {
		if d := point.distance(centroid); d < minDist {
			minDist = d
			nearest = i
		}
	}
	return nearest
}

func recalculateCentroids(points []point3D, assignments []int, k int) []point3D {
	sums := make([]point3D, k)
	counts := make([]int, k)
	for i, point := range points {
		cluster := assignments[i]
		sums[cluster].r += point.r
		sums[cluster].g += point.g
		sums[cluster].b += point.b
		counts[cluster]++
	}

	centroids := make([]point3D, k)
	for i := 0; i < k; i++ {
		if counts[i] > 0 {
			centroids[i] = point3D{
				r: sums[i].r / float64(counts[i]),
				g: sums[i].g / float64(counts[i]),
				b: sums[i].b / float64(counts[i]),
			}
		} else {
			centroids[i] = points[rand.Intn(len(points))]
		}
	}
	return centroids
}
