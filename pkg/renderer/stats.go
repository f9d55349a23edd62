package renderer

import (
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalTiles      int           // Tiles rendered
	TotalPixels     int           // Total number of pixels rendered
	TotalSamples    int           // Total number of camera rays traced
	SamplesPerPixel int           // Samples taken for every pixel
	Workers         int           // Worker goroutines used
	BVHNodes        int           // Nodes in the acceleration structure, zero when disabled
	Duration        time.Duration // Wall time of the render
}

// Merge adds the per-tile counters of other into s
func (s *RenderStats) Merge(other RenderStats) {
	s.TotalTiles += other.TotalTiles
	s.TotalPixels += other.TotalPixels
	s.TotalSamples += other.TotalSamples
	if other.SamplesPerPixel > 0 {
		s.SamplesPerPixel = other.SamplesPerPixel
	}
}

// SamplesPerSecond returns camera-ray throughput
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Duration.Seconds()
}

// WriteTable prints the statistics as a two-column table
func (s RenderStats) WriteTable(w io.Writer) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Statistic", "Value"})
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	table.Append([]string{"Tiles", fmt.Sprintf("%d", s.TotalTiles)})
	table.Append([]string{"Pixels", fmt.Sprintf("%d", s.TotalPixels)})
	table.Append([]string{"Samples per pixel", fmt.Sprintf("%d", s.SamplesPerPixel)})
	table.Append([]string{"Total samples", fmt.Sprintf("%d", s.TotalSamples)})
	table.Append([]string{"Workers", fmt.Sprintf("%d", s.Workers)})
	bvh := "disabled"
	if s.BVHNodes > 0 {
		bvh = fmt.Sprintf("%d nodes", s.BVHNodes)
	}
	table.Append([]string{"BVH", bvh})
	table.Append([]string{"Samples/sec", fmt.Sprintf("%.0f", s.SamplesPerSecond())})
	table.SetFooter([]string{"Render time", s.Duration.Round(time.Millisecond).String()})

	table.Render()
}
