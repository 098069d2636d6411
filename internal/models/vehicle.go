package models

import "strings"

// VehicleClass is a known vehicle category with a rated wading clearance
type VehicleClass string

const (
	VehicleCar   VehicleClass = "car"
	VehicleSUV   VehicleClass = "suv"
	VehicleTruck VehicleClass = "truck"
	VehicleBus   VehicleClass = "bus"
)

// clearances maps vehicle classes to rated clearance in centimeters
var clearances = map[VehicleClass]float64{
	VehicleCar:   10,
	VehicleSUV:   30,
	VehicleTruck: 50,
	VehicleBus:   40,
}

// ParseVehicleClass normalizes a caller-supplied vehicle type.
// Unrecognized classes fall back to car, the most conservative class
// (lowest clearance), so unknown vehicles are never over-trusted.
func ParseVehicleClass(s string) VehicleClass {
	v := VehicleClass(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := clearances[v]; !ok {
		return VehicleCar
	}
	return v
}

// ClearanceCM returns the rated clearance for the class in centimeters
func (v VehicleClass) ClearanceCM() float64 {
	if c, ok := clearances[v]; ok {
		return c
	}
	return clearances[VehicleCar]
}

// SafetyVerdict is the outcome of a vehicle crossing assessment
type SafetyVerdict struct {
	Safe        bool    `json:"safe"`
	Message     string  `json:"message"`
	ClearanceCM float64 `json:"clearance"`
}
