package main

import (
	"fmt"
	"log"
	"time"

	"github.com/hupe1980/ngramidx"
)

func main() {
	terms := []string{
		"music", "muskel", "kindergarten", "körper",
		"to learn", "gym", "mathematics", "bus", "school",
	}
	query := "shol"

	builder, err := ngramidx.NewBuilder[int](3)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("--- Insert ---")
	fmt.Println("Terms:", len(terms))

	start := time.Now()
	for id, term := range terms {
		if !builder.Insert(term, id) {
			fmt.Printf("skipped %q (shorter than n-gram length)\n", term)
		}
	}
	idx := builder.Build()
	fmt.Printf("Seconds: %.4f\n\n", time.Since(start).Seconds())

	fmt.Println("--- Query ---")
	fmt.Printf("Query: %q\n", query)

	q, ok := idx.MakeQueryVector(query)
	if !ok {
		log.Fatal("index not initialized")
	}

	for _, match := range idx.FindTopK(q, 5) {
		fmt.Printf("%-14s %.2f\n", terms[match.ID], match.Score)
	}
}
