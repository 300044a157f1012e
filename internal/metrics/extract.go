package metrics

import "github.com/acmelimited/netatmo-to-cloudwatch/internal/netatmo"

// Capability tags as declared in a module's data_type list.
const (
	capTemperature = "Temperature"
	capCO2         = "CO2"
	capRain        = "Rain"
)

// Extract walks the station tree and returns one Record per reading, in a
// stable order: stations as listed, five station metrics each, then each
// station's modules in order with their own metrics. A reading the source
// does not have still yields a Record with a nil value.
func Extract(stations []netatmo.Station) []Record {
	var records []Record
	for _, station := range stations {
		records = append(records, extractStation(station)...)
		for _, module := range station.Modules {
			records = append(records, extractModule(module)...)
		}
	}
	return records
}

func extractStation(s netatmo.Station) []Record {
	name := s.ModuleName
	dash := s.DashboardData
	ts := dash.Time()

	return []Record{
		{MetricTemperature, name, dash.Value("Temperature"), ts},
		{MetricCO2, name, dash.Value("CO2"), ts},
		{MetricHumidity, name, dash.Value("Humidity"), ts},
		{MetricNoise, name, dash.Value("Noise"), ts},
		{MetricAirPressure, name, dash.Value("Pressure"), ts},
	}
}

func extractModule(m netatmo.Module) []Record {
	// An unreachable module (dead battery, out of range) reports nothing
	// at all.
	if !m.Reachable {
		return nil
	}

	name := m.ModuleName
	dash := m.DashboardData
	ts := dash.Time()

	// Signal strength and battery level come from the module itself, not
	// its dashboard, and are reported for every reachable module.
	records := []Record{
		{MetricSignalStrength, name, m.RFStatus, ts},
		{MetricBatteryStatus, name, m.BatteryVP, ts},
	}

	if m.HasCapability(capTemperature) {
		records = append(records,
			Record{MetricTemperature, name, dash.Value("Temperature"), ts},
			Record{MetricHumidity, name, dash.Value("Humidity"), ts},
		)
	}
	if m.HasCapability(capCO2) {
		records = append(records,
			Record{MetricCO2, name, dash.Value("CO2"), ts},
		)
	}
	if m.HasCapability(capRain) {
		records = append(records,
			Record{MetricRain, name, dash.Value("Rain"), ts},
			Record{MetricRain1Hour, name, dash.Value("sum_rain_1"), ts},
			Record{MetricRain24Hours, name, dash.Value("sum_rain_24"), ts},
		)
	}

	// Wind gauges are not supported.
	return records
}
