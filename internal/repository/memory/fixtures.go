package memory

import (
	"time"

	"fuel-dispatch-monitor/internal/domain/dispatch"
	"fuel-dispatch-monitor/internal/domain/fleet"
)

// DefaultFixtures returns the seed registry used until the upstream
// registry integration lands. Timestamps are anchored to "now" so the
// monitored statuses stay plausible however long the process has run.
func DefaultFixtures(now time.Time) Fixtures {
	now = now.UTC()
	day := 24 * time.Hour

	dropOff1 := now.Add(-2*day + 7*time.Hour)

	return Fixtures{
		OilCompanies: []fleet.OilCompany{
			{
				ID:   "OC001",
				Name: "TotalEnergies Ethiopia",
				Contacts: fleet.ContactInfo{
					Person1: "Abebe Bekele",
					Phone1:  "+251 911 203 040",
					Email1:  "abebe.bekele@totalenergies.et",
				},
			},
			{
				ID:   "OC002",
				Name: "National Oil Company (NOC)",
				Contacts: fleet.ContactInfo{
					Person1: "Hanna Tesfaye",
					Phone1:  "+251 911 445 566",
					Email1:  "hanna.t@noc.et",
				},
			},
			{
				ID:   "OC003",
				Name: "OLA Energy Ethiopia",
				Contacts: fleet.ContactInfo{
					Person1: "Dawit Girma",
					Phone1:  "+251 912 334 455",
				},
			},
		},
		Transporters: []fleet.Transporter{
			{
				ID:   "TR001",
				Name: "Selam Freight PLC",
				Contacts: fleet.ContactInfo{
					Person1: "Mulugeta Assefa",
					Phone1:  "+251 911 556 677",
					Email1:  "dispatch@selamfreight.et",
				},
				Location: fleet.Location{
					Region:  "Addis Ababa",
					City:    "Addis Ababa",
					Address: "Kality, Industrial Zone",
				},
				Vehicles: []fleet.Vehicle{
					{
						ID:                "VH001",
						PlateRegNo:        "3-11111 ET",
						TrailerRegNo:      "3-90011 ET",
						Manufacturer:      "Sinotruk",
						Model:             "Howo A7",
						YearOfManufacture: 2019,
						SideNo:            "SF-01",
						DriverName:        "Kebede Worku",
						DriverPhone:       "+251 913 202 101",
					},
					{
						ID:                "VH002",
						PlateRegNo:        "3-22222 ET",
						TrailerRegNo:      "3-90022 ET",
						Manufacturer:      "Renault",
						Model:             "Kerax 440",
						YearOfManufacture: 2017,
						SideNo:            "SF-02",
						DriverName:        "Solomon Tadesse",
						DriverPhone:       "+251 913 404 303",
					},
				},
			},
			{
				ID:   "TR002",
				Name: "Walia Transport S.C.",
				Contacts: fleet.ContactInfo{
					Person1: "Tigist Alemu",
					Phone1:  "+251 911 778 899",
				},
				Location: fleet.Location{
					Region:  "Oromia",
					City:    "Adama",
					Address: "Main road, depot gate 4",
				},
				Vehicles: []fleet.Vehicle{
					{
						ID:                "VH003",
						PlateRegNo:        "3-33333 ET",
						TrailerRegNo:      "3-90033 ET",
						Manufacturer:      "Iveco",
						Model:             "Trakker",
						YearOfManufacture: 2020,
						SideNo:            "WT-11",
						DriverName:        "Getachew Lemma",
						DriverPhone:       "+251 914 505 606",
					},
				},
			},
		},
		Depots: []fleet.Depot{
			{
				ID:   "ID8548",
				Name: "Awash Depot",
				Contacts: fleet.ContactInfo{
					Person1: "Yonas Haile",
					Phone1:  "+251 911 667 788",
				},
				Location: fleet.Location{
					Region:  "Afar",
					City:    "Awash",
					Address: "Awash Sebat Kilo",
				},
				MapLocation: &fleet.LatLng{Lat: 8.9936, Lng: 40.1672},
			},
			{
				ID:   "ID8549",
				Name: "Dire Dawa Depot",
				Contacts: fleet.ContactInfo{
					Person1: "Selamawit Bekele",
					Phone1:  "+251 915 808 909",
				},
				Location: fleet.Location{
					Region:  "Dire Dawa",
					City:    "Dire Dawa",
					Address: "Industrial area",
				},
				MapLocation: &fleet.LatLng{Lat: 9.5931, Lng: 41.8661},
			},
			{
				ID:   "ID8550",
				Name: "Mekelle Depot",
				Location: fleet.Location{
					Region:  "Tigray",
					City:    "Mekelle",
					Address: "Quiha",
				},
			},
		},
		DispatchTasks: []dispatch.Task{
			{
				PEADispatchNo:      "PEA001",
				OilCompanyID:       "OC001",
				TransporterID:      "TR001",
				VehicleID:          "VH001",
				DispatchDateTime:   now.Add(-6 * time.Hour),
				DispatchLocation:   "Djibouti Terminal",
				DestinationDepotID: "ID8548",
				ETADateTime:        now.Add(10 * time.Hour),
				FuelType:           dispatch.FuelDiesel,
				DispatchedLiters:   42000,
				Status:             dispatch.StatusOnTransit,
				LastGpsPoint: &dispatch.GpsPoint{
					Lat: 9.3012, Lng: 40.9921,
					Timestamp: now.Add(-20 * time.Minute),
				},
			},
			{
				PEADispatchNo:      "PEA002",
				OilCompanyID:       "OC002",
				TransporterID:      "TR001",
				VehicleID:          "VH002",
				DispatchDateTime:   now.Add(-2 * day),
				DispatchLocation:   "Sululta Depot",
				DestinationDepotID: "ID8549",
				ETADateTime:        now.Add(-8 * time.Hour),
				FuelType:           dispatch.FuelBenzine,
				DispatchedLiters:   36000,
				Status:             dispatch.StatusExceededETA,
				LastGpsPoint: &dispatch.GpsPoint{
					Lat: 9.1450, Lng: 40.0330,
					Timestamp: now.Add(-3 * time.Hour),
				},
			},
			{
				PEADispatchNo:      "PEA003",
				OilCompanyID:       "OC003",
				TransporterID:      "TR002",
				VehicleID:          "VH003",
				DispatchDateTime:   now.Add(-3 * day),
				DispatchLocation:   "Djibouti Terminal",
				DestinationDepotID: "ID8550",
				ETADateTime:        now.Add(-1 * day),
				FuelType:           dispatch.FuelJetFuel,
				DispatchedLiters:   30000,
				Status:             dispatch.StatusGPSOffline24h,
				LastGpsPoint: &dispatch.GpsPoint{
					Lat: 11.7893, Lng: 39.6100,
					Timestamp: now.Add(-30 * time.Hour),
				},
			},
			{
				PEADispatchNo:      "PEA004",
				OilCompanyID:       "OC001",
				TransporterID:      "TR002",
				VehicleID:          "VH003",
				DispatchDateTime:   now.Add(-1 * day),
				DispatchLocation:   "Awash Depot",
				DestinationDepotID: "ID8549",
				ETADateTime:        now.Add(6 * time.Hour),
				FuelType:           dispatch.FuelDiesel,
				DispatchedLiters:   38000,
				Status:             dispatch.StatusStopped5h,
				LastGpsPoint: &dispatch.GpsPoint{
					Lat: 9.5822, Lng: 41.2210,
					Timestamp: now.Add(-6 * time.Hour),
				},
			},
			{
				PEADispatchNo:      "PEA005",
				OilCompanyID:       "OC002",
				TransporterID:      "TR001",
				VehicleID:          "VH001",
				DispatchDateTime:   now.Add(-2 * day),
				DispatchLocation:   "Djibouti Terminal",
				DestinationDepotID: "ID8548",
				ETADateTime:        now.Add(-1*day - 2*time.Hour),
				FuelType:           dispatch.FuelBenzine,
				DispatchedLiters:   40000,
				DropOffDateTime:    &dropOff1,
				DropOffLocation:    "Awash Depot gate 2",
				Status:             dispatch.StatusDelivered,
			},
		},
		RegionalFuelSummary: []dispatch.RegionFuelSummary{
			{Region: "Addis Ababa", WeekLabel: "W35", BenzineM3: 310, DieselM3: 520, JetFuelM3: 90},
			{Region: "Oromia", WeekLabel: "W35", BenzineM3: 220, DieselM3: 430, JetFuelM3: 0},
			{Region: "Amhara", WeekLabel: "W35", BenzineM3: 150, DieselM3: 260, JetFuelM3: 0},
			{Region: "Tigray", WeekLabel: "W35", BenzineM3: 80, DieselM3: 140, JetFuelM3: 25},
			{Region: "Sidama", WeekLabel: "W35", BenzineM3: 95, DieselM3: 180, JetFuelM3: 0},
		},
		Profile: Profile{
			FullName: "PEA Admin",
			Email:    "admin@pea.gov.et",
			Phone:    "+251 911 000 000",
			Role:     "administrator",
			// seeded bcrypt hash, rotated on first login
			PasswordHash: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy",
		},
	}
}
