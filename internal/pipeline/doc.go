// Package pipeline streams FASTQ records through parallel minimizer
// extraction and a single, ordered scoring stage, then calls a visit
// callback per read in input order.
//
// Extraction is read-local and runs on Config.Threads workers. Scoring
// mutates the shared table, so it runs on one goroutine and sees reads in
// exactly the order the Source produced them.
package pipeline
