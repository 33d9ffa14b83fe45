// Command figureS3 builds the producer-proportion summary figure. It reads
// the replicate time series, reduces each replicate to a time-normalized
// integral, and renders mean ± SEM per environmental change frequency to
// FigureS3.png, with the underlying numbers in FigureS3.xlsx.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"envfig/dataset"
	"envfig/figstyle"
	"envfig/figure"
	"envfig/report"
	"envfig/stats"
)

const (
	inputPath    = "../data/figureS3.csv"
	figurePath   = "../figures/FigureS3.png"
	workbookPath = "../figures/FigureS3.xlsx"
)

func main() {
	obs, err := dataset.ReadCSV(inputPath)
	if err != nil {
		log.Fatal("Error reading measurements: ", err)
	}
	fmt.Printf("Read %d observations\n", len(obs))

	aggs := stats.FilterChanging(stats.Integrate(obs))
	summaries := stats.Summarize(aggs)
	fmt.Printf("Aggregated %d replicates across %d conditions\n", len(aggs), len(summaries))

	p, err := figure.Build(summaries)
	if err != nil {
		log.Fatal("Error building figure: ", err)
	}

	if err := os.MkdirAll(filepath.Dir(figurePath), 0o755); err != nil {
		log.Fatal("Error creating figure directory: ", err)
	}

	width := figstyle.FigureWidth
	if err := figure.WritePNG(p, figurePath, width, figstyle.GoldenHeight(width), figstyle.FigureDPI); err != nil {
		log.Fatal("Error writing figure: ", err)
	}
	fmt.Println("Figure written:", figurePath)

	if err := report.WriteWorkbook(workbookPath, aggs, summaries); err != nil {
		log.Fatal("Error writing workbook: ", err)
	}
	fmt.Println("Workbook written:", workbookPath)
}
