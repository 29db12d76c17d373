package main

import "github.com/juniorverli/duckdb-tpcds-to-parquet/cmd/tpcdsgen/cmd"

func main() {
	cmd.Execute()
}
