// Copyright 2018 The Solid Core Data Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/solidcoredata/rook/config"
	"github.com/solidcoredata/rook/internal/ingest"
	"github.com/solidcoredata/rook/internal/runner"
	"github.com/solidcoredata/rook/internal/start"
	"github.com/solidcoredata/rook/query"
	"github.com/solidcoredata/rook/queryplan"
	"github.com/solidcoredata/rook/rpc"
	"github.com/solidcoredata/rook/table"
)

func main() {
	flag.Parse()
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := start.Start(context.Background(), 5*time.Second, run(logger)); err != nil {
		logger.Error("rookd exited with error", zap.Error(err))
		os.Exit(1)
	}
}

func run(logger *zap.Logger) start.StartFunc {
	return func(ctx context.Context) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		tables, err := loadTables(cfg.DataDir)
		if err != nil {
			return err
		}
		for name, t := range tables {
			logger.Info("loaded table", zap.String("table", name), zap.Int("batches", len(t.Batches)))
		}

		svc := &runner.Service{Tables: tables}
		for name, res := range probeTables(ctx, svc, tables) {
			logger.Info("probe query", zap.String("table", name),
				zap.Int("batchCount", res.BatchCount), zap.Int("mergeLevel", res.MergeLevel))
		}

		<-ctx.Done()
		return nil
	}
}

// probeTables runs a trivial "select first column" query against every
// loaded table through the rpc.QueryService boundary, the shape a real
// transport would drive this process through. It exists to exercise
// that boundary at startup; a transport implementation would replace
// it entirely.
func probeTables(ctx context.Context, svc rpc.QueryService, tables map[string]*table.Table) map[string]*query.BatchResult {
	out := make(map[string]*query.BatchResult)
	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		t := tables[name]
		if len(t.Batches) == 0 {
			continue
		}
		colNames := t.Batches[0].ColumnNames()
		if len(colNames) == 0 {
			continue
		}
		q := &query.Query{
			Table:  name,
			Select: []queryplan.Expr{queryplan.ColNameExpr{Name: colNames[0]}},
		}
		res, err := svc.RunQuery(ctx, &rpc.QueryRequest{Table: name, Query: q})
		if err != nil {
			continue
		}
		out[name] = res.Result
	}
	return out
}

// loadTables ingests every *.csv file in dir as a single-batch table
// named after the file's base name.
func loadTables(dir string) (map[string]*table.Table, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	tables := make(map[string]*table.Table)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".csv") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		b, err := ingest.ReadCSV(f)
		f.Close()
		if err != nil {
			return nil, err
		}
		name := strings.TrimSuffix(entry.Name(), ".csv")
		t := table.New(name)
		t.Append(b)
		tables[name] = t
	}
	return tables, nil
}
