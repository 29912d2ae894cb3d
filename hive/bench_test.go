package hive_test

import (
	"testing"

	"github.com/katalvlaran/beehive/hive"
)

func benchConfig() hive.Config {
	cfg := hive.DefaultConfig()
	cfg.MaxCycles = 10
	cfg.Seed = seedDet
	return cfg
}

func BenchmarkHive_RunCycles_Cities20(b *testing.B) {
	model := mustCities(b, 20)
	cfg := benchConfig()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		h, err := hive.New(model, cfg)
		if err != nil {
			b.Fatal(err)
		}
		if err = h.Run(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEvaluate_Cities26(b *testing.B) {
	model := mustCities(b, 26)
	c := hive.ExportedGenerateRandom(model.Symbols(), hive.ExportedRNGFromSeed(1))
	b.ResetTimer()
	var sink float64
	for i := 0; i < b.N; i++ {
		sink += hive.Evaluate(c, model)
	}
	_ = sink
}
