package entities

// ServiceLine references a catalog Service from a service order. Orders are
// persisted with bare ids; readers attach the catalog record when they
// resolve the line.
type ServiceLine struct {
	ID      int64
	Service *Service
}

// SupplyLine references a catalog Supply from a service order.
type SupplyLine struct {
	ID     int64
	Supply *Supply
}

func ServiceRef(id int64) ServiceLine { return ServiceLine{ID: id} }

func SupplyRef(id int64) SupplyLine { return SupplyLine{ID: id} }

func ResolvedServiceLine(s Service) ServiceLine {
	svc := s
	return ServiceLine{ID: s.ID, Service: &svc}
}

func ResolvedSupplyLine(s Supply) SupplyLine {
	sup := s
	return SupplyLine{ID: s.ID, Supply: &sup}
}

func (l ServiceLine) Resolved() bool { return l.Service != nil }

func (l SupplyLine) Resolved() bool { return l.Supply != nil }

func ServiceRefs(ids []int64) []ServiceLine {
	lines := make([]ServiceLine, 0, len(ids))
	for _, id := range ids {
		lines = append(lines, ServiceRef(id))
	}
	return lines
}

func SupplyRefs(ids []int64) []SupplyLine {
	lines := make([]SupplyLine, 0, len(ids))
	for _, id := range ids {
		lines = append(lines, SupplyRef(id))
	}
	return lines
}

func ServiceLineIDs(lines []ServiceLine) []int64 {
	ids := make([]int64, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.ID)
	}
	return ids
}

func SupplyLineIDs(lines []SupplyLine) []int64 {
	ids := make([]int64, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.ID)
	}
	return ids
}
