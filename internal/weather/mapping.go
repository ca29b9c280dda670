package weather

import "api-consumer/internal/pipeline"

// MapReport reads weather[0].description and main.temp from a current
// weather payload.
func MapReport(city string, payload any) (Report, error) {
	root, err := pipeline.Object(payload, "")
	if err != nil {
		return Report{}, err
	}

	conditions, err := pipeline.ListField(root, "weather", "")
	if err != nil {
		return Report{}, err
	}
	if len(conditions) == 0 {
		return Report{}, &pipeline.MappingError{Path: "weather", Reason: "empty list"}
	}

	first, err := pipeline.Object(conditions[0], pipeline.IndexPath("weather", 0))
	if err != nil {
		return Report{}, err
	}
	description, err := pipeline.StringField(first, "description", pipeline.IndexPath("weather", 0))
	if err != nil {
		return Report{}, err
	}

	mainBlock, err := pipeline.ObjectField(root, "main", "")
	if err != nil {
		return Report{}, err
	}
	temp, err := pipeline.NumberField(mainBlock, "temp", "main")
	if err != nil {
		return Report{}, err
	}

	return NewReport(city, description, temp), nil
}
