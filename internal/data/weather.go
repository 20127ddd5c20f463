package data

import "fmt"

// NumWeatherClasses is the number of weather conditions after
// relabeling.
const NumWeatherClasses = 5

// WeatherClasses names the weather conditions, indexed by class
// label.
var WeatherClasses = [NumWeatherClasses]string{"sunny", "cloudy", "rainy", "snowy", "foggy"}

// weatherMapping folds the ten source labels into five weather
// conditions: {0,1}->sunny, {2,3,4}->cloudy, {5,6}->rainy,
// {7,8}->snowy, {9}->foggy.
var weatherMapping = [10]int{0, 0, 1, 1, 1, 2, 2, 3, 3, 4}

// MapWeatherLabel maps one source label (0-9) to its weather class.
// Panics when the label is outside the source range.
func MapWeatherLabel(label int) int {
	if label < 0 || label >= len(weatherMapping) {
		panic(fmt.Sprintf("data: source label %d outside [0, 9]", label))
	}
	return weatherMapping[label]
}

// RemapWeather relabels ds in place from the ten source classes to
// the five weather classes and returns ds.
func RemapWeather(ds *Dataset) *Dataset {
	for i, label := range ds.Labels {
		ds.Labels[i] = MapWeatherLabel(label)
	}
	ds.ClassCount = NumWeatherClasses
	return ds
}
