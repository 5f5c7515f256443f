package main

// One-off catalog loader: reads a JSON fixture of products and inserts
// them into the catalog table. Run once per deployment:
//
//	go run ./scripts/import_products -fixture data/products.json

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/foodgram-ru/foodgram-backend/model"
	"github.com/foodgram-ru/foodgram-backend/utils"
	"github.com/foodgram-ru/foodgram-backend/utils/dotenv"
)

type productFixture struct {
	Name            string `json:"name"`
	MeasurementUnit string `json:"measurement_unit"`
}

func main() {
	fixturePath := flag.String("fixture", "data/products.json", "path to the products fixture")
	flag.Parse()

	if err := dotenv.LoadDotEnvs(); err != nil {
		panic(err)
	}

	raw, err := os.ReadFile(*fixturePath)
	if err != nil {
		panic(err)
	}
	fixtures := []productFixture{}
	if err := json.Unmarshal(raw, &fixtures); err != nil {
		panic(err)
	}

	db, err := utils.GetDBConnection()
	if err != nil {
		panic(err)
	}
	if err := utils.DBSetupAndMigration(db); err != nil {
		panic(err)
	}

	products := make([]*model.Product, 0, len(fixtures))
	for _, f := range fixtures {
		products = append(products, &model.Product{
			Id:              uuid.New().String(),
			Name:            f.Name,
			MeasurementUnit: f.MeasurementUnit,
		})
	}
	if err := db.CreateInBatches(products, 500).Error; err != nil {
		panic(err)
	}
	fmt.Printf("imported %d products from %s\n", len(products), *fixturePath)
}
