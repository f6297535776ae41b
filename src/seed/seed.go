package seed

import (
	"log"
	"time"

	"github.com/astrolog/AstroLog-Backend/src/models"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

// Seed inserts a small observation catalog for development and demos. Every
// insert is guarded by an existence check so re-running is harmless.
func Seed(database *gorm.DB) {
	seedTypes(database)
	seedProperties(database)
	seedPlaces(database)
	seedInstruments(database)
	seedObjects(database)
	seedObservations(database)
	log.Println("Seeding finished")
}

func seedTypes(database *gorm.DB) {
	types := []models.TypeModel{
		{Id: 1, Name: "Galaxy"},
		{Id: 2, Name: "Planet"},
		{Id: 3, Name: "Star"},
		{Id: 4, Name: "Nebula"},
	}
	for _, t := range types {
		var existing models.TypeModel
		if err := database.Where("id = ?", t.Id).First(&existing).Error; err == nil {
			continue
		}
		if err := database.Create(&t).Error; err != nil {
			log.Printf("Failed to create type %q: %v\n", t.Name, err)
		} else {
			log.Printf("Type %q created\n", t.Name)
		}
	}
}

func seedProperties(database *gorm.DB) {
	properties := []models.PropertyModel{
		{Id: 1, Name: "Magnitude", ValueType: "float"},
		{Id: 2, Name: "Distance", ValueType: "string"},
	}
	for _, p := range properties {
		var existing models.PropertyModel
		if err := database.Where("id = ?", p.Id).First(&existing).Error; err == nil {
			continue
		}
		if err := database.Create(&p).Error; err != nil {
			log.Printf("Failed to create property %q: %v\n", p.Name, err)
		} else {
			log.Printf("Property %q created\n", p.Name)
		}
	}
}

func seedPlaces(database *gorm.DB) {
	places := []models.PlaceModel{
		{
			Name:     "Royal Observatory Greenwich",
			Lat:      "51.4778",
			Lon:      "0.0015",
			Alt:      strPtr("45m"),
			Timezone: strPtr("Europe/London"),
		},
		{
			Name:     "Mauna Kea Observatory",
			Lat:      "19.8208",
			Lon:      "-155.4681",
			Alt:      strPtr("4205m"),
			Timezone: strPtr("Pacific/Honolulu"),
		},
	}
	for _, p := range places {
		var existing models.PlaceModel
		if err := database.Where("name = ?", p.Name).First(&existing).Error; err == nil {
			continue
		}
		if err := database.Create(&p).Error; err != nil {
			log.Printf("Failed to create place %q: %v\n", p.Name, err)
		} else {
			log.Printf("Place %q created\n", p.Name)
		}
	}
}

func seedInstruments(database *gorm.DB) {
	instruments := []models.InstrumentModel{
		{Id: 1, Name: "Celestron NexStar 8SE", Aperture: strPtr("203.2mm"), Power: strPtr("2032mm")},
		{Id: 2, Name: "Subaru Telescope", Aperture: strPtr("8.2m"), Power: strPtr("Primary f/1.83, Final f/12.2")},
	}
	for _, i := range instruments {
		var existing models.InstrumentModel
		if err := database.Where("id = ?", i.Id).First(&existing).Error; err == nil {
			continue
		}
		if err := database.Create(&i).Error; err != nil {
			log.Printf("Failed to create instrument %q: %v\n", i.Name, err)
		} else {
			log.Printf("Instrument %q created\n", i.Name)
		}
	}
}

func seedObjects(database *gorm.DB) {
	objects := []models.ObjectModel{
		{
			Id:          1,
			Name:        "Andromeda Galaxy",
			Designation: strPtr("M31"),
			Type:        1,
			Props:       strPtr(`{"distance":"2.537 million light years","constellation":"Andromeda"}`),
		},
		{
			Id:          2,
			Name:        "Mars",
			Designation: strPtr("Sol d"),
			Type:        2,
			Props:       strPtr(`{"distance":"227.9 million km from Sun","moons":2}`),
		},
	}
	for _, o := range objects {
		var existing models.ObjectModel
		if err := database.Where("id = ?", o.Id).First(&existing).Error; err == nil {
			continue
		}
		if err := database.Create(&o).Error; err != nil {
			log.Printf("Failed to create object %q: %v\n", o.Name, err)
		} else {
			log.Printf("Object %q created\n", o.Name)
		}
	}
}

func seedObservations(database *gorm.DB) {
	var count int64
	if err := database.Model(&models.ObservationModel{}).Count(&count).Error; err != nil || count > 0 {
		return
	}

	observations := []models.ObservationModel{
		{
			Object:      1,
			Place:       1,
			Instrument:  1,
			Datetime:    time.Date(2025, 1, 1, 22, 30, 0, 0, time.UTC),
			Observation: "Clear view of the galactic core, spiral arms visible with averted vision",
			Prop1:       intPtr(1),
			Prop1Value:  strPtr("3.4"),
		},
		{
			Object:      2,
			Place:       2,
			Instrument:  2,
			Datetime:    time.Date(2025, 1, 15, 3, 10, 0, 0, time.UTC),
			Observation: "Polar ice cap well defined, slight dust activity near Syrtis Major",
		},
	}
	for _, o := range observations {
		if err := database.Create(&o).Error; err != nil {
			log.Printf("Failed to create observation: %v\n", err)
		}
	}
	log.Printf("Seeded %d observations\n", len(observations))
}
