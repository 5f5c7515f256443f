package model

/*

Product is a purchasable catalog item, e.g. "flour" measured in "g"

Id: primary key
Name: display name, lower case in the catalog fixture
MeasurementUnit: unit the amount of this product is counted in

Products are reference data: rows are created by the catalog import
script and never mutated through the API.

*/

type Product struct {
	Id              string `gorm:"primaryKey"`
	Name            string `gorm:"index"`
	MeasurementUnit string
}
