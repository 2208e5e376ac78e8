package memory

import (
	"sync"

	"fuel-dispatch-monitor/internal/domain/dispatch"
	"fuel-dispatch-monitor/internal/domain/fleet"
)

// Store is the injected in-memory backing store. It is constructed from an
// explicit fixture set rather than loaded as package state, so services and
// their tests decide what data they run against. All access goes through
// the repository views returned by Fleet() and Dispatch().
//
// Indexes are id-keyed and rebuilt on every mutation; reads share one join
// implementation instead of each caller building its own maps.
type Store struct {
	mu sync.RWMutex

	oilCompanies []fleet.OilCompany
	transporters []fleet.Transporter
	depots       []fleet.Depot
	tasks        []dispatch.Task
	regionalFuel []dispatch.RegionFuelSummary
	profile      Profile

	companiesByID    map[string]int
	transportersByID map[string]int
	depotsByID       map[string]int
	tasksByNo        map[string]int
	vehiclesByID     map[string]fleet.Vehicle
}

// Profile is the operator account shown on the settings page. There is a
// single account; authentication is out of scope.
type Profile struct {
	FullName     string
	Email        string
	Phone        string
	Role         string
	PasswordHash string
}

// Fixtures is the seed data a Store starts from.
type Fixtures struct {
	OilCompanies        []fleet.OilCompany
	Transporters        []fleet.Transporter
	Depots              []fleet.Depot
	DispatchTasks       []dispatch.Task
	RegionalFuelSummary []dispatch.RegionFuelSummary
	Profile             Profile
}

func NewStore(fx Fixtures) *Store {
	s := &Store{
		oilCompanies: append([]fleet.OilCompany(nil), fx.OilCompanies...),
		transporters: append([]fleet.Transporter(nil), fx.Transporters...),
		depots:       append([]fleet.Depot(nil), fx.Depots...),
		tasks:        append([]dispatch.Task(nil), fx.DispatchTasks...),
		regionalFuel: append([]dispatch.RegionFuelSummary(nil), fx.RegionalFuelSummary...),
		profile:      fx.Profile,
	}
	s.reindex()
	return s
}

// reindex rebuilds the id lookups. Callers must hold the write lock.
func (s *Store) reindex() {
	s.companiesByID = make(map[string]int, len(s.oilCompanies))
	for i, c := range s.oilCompanies {
		s.companiesByID[c.ID] = i
	}

	s.transportersByID = make(map[string]int, len(s.transporters))
	s.vehiclesByID = make(map[string]fleet.Vehicle)
	for i, t := range s.transporters {
		s.transportersByID[t.ID] = i
		for _, v := range t.Vehicles {
			// first-seen-wins on duplicate vehicle ids
			if _, ok := s.vehiclesByID[v.ID]; !ok {
				s.vehiclesByID[v.ID] = v
			}
		}
	}

	s.depotsByID = make(map[string]int, len(s.depots))
	for i, d := range s.depots {
		s.depotsByID[d.ID] = i
	}

	s.tasksByNo = make(map[string]int, len(s.tasks))
	for i, t := range s.tasks {
		s.tasksByNo[t.PEADispatchNo] = i
	}
}

// Fleet returns the fleet registry view over the store.
func (s *Store) Fleet() fleet.Repository {
	return &fleetRepository{store: s}
}

// Dispatch returns the dispatch task view over the store.
func (s *Store) Dispatch() dispatch.Repository {
	return &dispatchRepository{store: s}
}

// GetProfile returns a copy of the operator profile.
func (s *Store) GetProfile() Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// UpdateProfile replaces the operator profile.
func (s *Store) UpdateProfile(p Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = p
}
