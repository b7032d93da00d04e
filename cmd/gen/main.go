package main

import (
	"mazza/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.StoreModel{},
		model.ProductModel{},
		model.OrderModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
