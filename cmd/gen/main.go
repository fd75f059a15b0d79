package main

import (
	"freeport/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.ListingModel{},
		model.TransactionModel{},
		model.SubscriptionModel{},
		model.CampaignModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
