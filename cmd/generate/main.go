package main

import (
	"encoding/json"
	"flag"
	"io"
	"log"
	"os"

	"dataserve/dataset"
)

func main() {
	count := flag.Int("count", 10, "Number of records to generate")
	seed := flag.Int64("seed", 0, "Random seed (0 seeds from the clock)")
	dates := flag.Bool("dates", false, "Emit records in the multi-date-format shape")
	output := flag.String("output", "", "Output file path (default stdout)")
	flag.Parse()

	var out io.Writer = os.Stdout
	if *output != "" {
		file, err := os.Create(*output)
		if err != nil {
			log.Fatal("Failed to create output file:", err)
		}
		defer file.Close()
		out = file
	}

	var gen *dataset.Generator
	if *seed != 0 {
		gen = dataset.NewSeededGenerator(*seed)
	} else {
		gen = dataset.NewGenerator()
	}

	enc := json.NewEncoder(out)
	for i := 1; i <= *count; i++ {
		var err error
		if *dates {
			err = enc.Encode(gen.DatedRecord(i))
		} else {
			err = enc.Encode(gen.Record(i))
		}
		if err != nil {
			log.Fatalf("Failed to encode record %d: %v", i, err)
		}
	}

	log.Printf("Generated %d records", *count)
}
