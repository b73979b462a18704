package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"time"
)

// Column positions in the emitted snapshot files
const (
	colTransactionID = 0
	colTimestamp     = 1
	colType          = 4
	colAmount        = 5
	colCurrency      = 6
	colStatus        = 8
	columnCount      = 12
)

// timestampLayout matches the timestamp column of the snapshots
const timestampLayout = "2006-01-02 15:04:05"

var cleanIDPattern = regexp.MustCompile(`^TXN\d{8}$`)

// FileStats contains metrics for a single snapshot file
type FileStats struct {
	Name string
	Rows int
}

// DatasetStats contains aggregated dataset statistics
type DatasetStats struct {
	Files                []FileStats
	TotalRows            int
	TotalCells           int
	BlankCells           int
	MissingIDs           int
	DamagedIDs           int
	UnparsableAmounts    int
	UnparsableTimestamps int
	MalformedRows        int
	TypeCounts           map[string]int
	StatusCounts         map[string]int
	CurrencyCounts       map[string]int
	AmountCount          int
	AmountSum            float64
	MinAmount            float64
	MaxAmount            float64
}

func main() {

	// Define command line flags
	dir := flag.String("dir", "data", "Directory holding the snapshot files")
	prefix := flag.String("prefix", "financial_transactions", "Snapshot file name prefix")
	flag.Parse()

	pattern := filepath.Join(*dir, *prefix+"_*.csv")
	paths, err := filepath.Glob(pattern)
	if err != nil {
		fmt.Printf("Bad file pattern %q: %v\n", pattern, err)
		os.Exit(1)
	}
	if len(paths) == 0 {
		fmt.Printf("No snapshot files matching %q\n", pattern)
		os.Exit(1)
	}
	sort.Strings(paths)

	fmt.Printf("Inspecting %d snapshot files under %s\n", len(paths), *dir)

	// Initialize dataset statistics
	stats := &DatasetStats{
		TypeCounts:     make(map[string]int),
		StatusCounts:   make(map[string]int),
		CurrencyCounts: make(map[string]int),
		MinAmount:      1e18, // Start with a high value that will be replaced
		MaxAmount:      -1e18,
	}

	for _, path := range paths {
		rows, err := inspectFile(path, stats)
		if err != nil {
			fmt.Printf("Failed to read %s: %v\n", path, err)
			os.Exit(1)
		}
		stats.Files = append(stats.Files, FileStats{Name: filepath.Base(path), Rows: rows})
		stats.TotalRows += rows
	}

	printReport(stats)
}

// inspectFile reads one snapshot and folds its rows into the stats
func inspectFile(path string, stats *DatasetStats) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = columnCount

	// Skip the header row
	if _, err := reader.Read(); err != nil {
		return 0, fmt.Errorf("reading header: %w", err)
	}

	rows := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			stats.MalformedRows++
			continue
		}

		rows++
		stats.TotalCells += len(row)

		for _, cell := range row {
			if cell == "" {
				stats.BlankCells++
			}
		}

		id := row[colTransactionID]
		if id == "" {
			stats.MissingIDs++
		} else if !cleanIDPattern.MatchString(id) {
			stats.DamagedIDs++
		}

		if ts := row[colTimestamp]; ts != "" {
			if _, err := time.Parse(timestampLayout, ts); err != nil {
				stats.UnparsableTimestamps++
			}
		}

		if txType := row[colType]; txType != "" {
			stats.TypeCounts[txType]++
		}
		if status := row[colStatus]; status != "" {
			stats.StatusCounts[status]++
		}
		if currency := row[colCurrency]; currency != "" {
			stats.CurrencyCounts[currency]++
		}

		if raw := row[colAmount]; raw != "" {
			amount, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				stats.UnparsableAmounts++
			} else {
				stats.AmountCount++
				stats.AmountSum += amount
				if amount < stats.MinAmount {
					stats.MinAmount = amount
				}
				if amount > stats.MaxAmount {
					stats.MaxAmount = amount
				}
			}
		}
	}

	return rows, nil
}

func printReport(stats *DatasetStats) {
	fmt.Println("\n================= DATASET REPORT =================")
	fmt.Printf("Snapshot Files:      %d\n", len(stats.Files))
	fmt.Printf("Total Rows:          %d\n", stats.TotalRows)

	fmt.Println("\n----------------- FILES -----------------")
	for _, file := range stats.Files {
		fmt.Printf("%-45s: %d rows\n", file.Name, file.Rows)
	}

	fmt.Println("\n----------------- TRANSACTION TYPES -----------------")
	printDistribution(stats.TypeCounts)

	fmt.Println("\n----------------- STATUS DISTRIBUTION -----------------")
	printDistribution(stats.StatusCounts)

	fmt.Println("\n----------------- CURRENCY DISTRIBUTION -----------------")
	printDistribution(stats.CurrencyCounts)

	fmt.Println("\n----------------- AMOUNTS -----------------")
	if stats.AmountCount > 0 {
		fmt.Printf("Parseable Amounts:   %d\n", stats.AmountCount)
		fmt.Printf("Minimum Amount:      %.2f\n", stats.MinAmount)
		fmt.Printf("Maximum Amount:      %.2f\n", stats.MaxAmount)
		fmt.Printf("Average Amount:      %.2f\n", stats.AmountSum/float64(stats.AmountCount))
	} else {
		fmt.Println("No parseable amounts found")
	}

	fmt.Println("\n----------------- DATA QUALITY -----------------")
	fmt.Printf("Blank Cells:          %d\n", stats.BlankCells)
	fmt.Printf("Missing IDs:          %d\n", stats.MissingIDs)
	fmt.Printf("Damaged IDs:          %d\n", stats.DamagedIDs)
	fmt.Printf("Unparsable Amounts:   %d\n", stats.UnparsableAmounts)
	fmt.Printf("Unparsable Timestamps: %d\n", stats.UnparsableTimestamps)
	fmt.Printf("Malformed Rows:       %d\n", stats.MalformedRows)
	if stats.TotalCells > 0 {
		damaged := stats.BlankCells + stats.DamagedIDs + stats.UnparsableAmounts + stats.UnparsableTimestamps
		fmt.Printf("Damaged Cell Share:   %.2f%%\n", float64(damaged)/float64(stats.TotalCells)*100)
	}

	// Final conclusion
	fmt.Println("\n================= CONCLUSION =================")
	growing := true
	for i := 1; i < len(stats.Files); i++ {
		if stats.Files[i].Rows < stats.Files[i-1].Rows {
			growing = false
			break
		}
	}
	if growing {
		fmt.Println("✅ SNAPSHOT SIZES GROW MONOTONICALLY")
	} else {
		fmt.Println("❌ SNAPSHOT SIZES SHRINK BETWEEN FILES: dataset is inconsistent")
	}
	fmt.Println("================================================")
}

// printDistribution prints a count map with percentages
func printDistribution(counts map[string]int) {
	total := 0
	for _, count := range counts {
		total += count
	}
	if total == 0 {
		fmt.Println("No values found")
		return
	}

	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fmt.Printf("%-15s: %d rows (%.1f%%)\n", key, counts[key],
			float64(counts[key])/float64(total)*100)
	}
}
