package domain

// RoomGroup classifies a room by the catalog context it belongs to
type RoomGroup string

const (
	// GroupStandard default meeting-room catalog
	GroupStandard RoomGroup = "standard"
	// GroupEvent event-venue rooms, feature-flagged, governed by the event time zone
	GroupEvent RoomGroup = "event"
	// GroupAlternate alternate-site rooms
	GroupAlternate RoomGroup = "alternate"
)

// ParseRoomGroup maps a catalog query value onto a RoomGroup.
// Empty input and unknown values resolve to GroupStandard.
func ParseRoomGroup(s string) RoomGroup {
	switch RoomGroup(s) {
	case GroupEvent, GroupAlternate, GroupStandard:
		return RoomGroup(s)
	default:
		return GroupStandard
	}
}

// Room represents a bookable room
type Room struct {
	ID    string
	Name  string
	Group RoomGroup
}

// RoomSeed describes a default room created lazily in the backing store.
// LegacyName, when set, is a historical display name that is renamed to
// Name on first catalog access (bookings keep pointing at the same row).
type RoomSeed struct {
	ID         string
	Name       string
	LegacyName string
	Group      RoomGroup
}

// StandardRoomSeed default meeting rooms
var StandardRoomSeed = []RoomSeed{
	{Name: "Sala Caracas", Group: GroupStandard},
	{Name: "Sala Beirut", Group: GroupStandard},
	{Name: "Sala Aruba", Group: GroupStandard},
	{Name: "Cabina Mallorca", Group: GroupStandard},
	{Name: "Cabina Miami", Group: GroupStandard},
	{Name: "Cabina Bogota", Group: GroupStandard},
	{Name: "Cabina London", Group: GroupStandard},
	{Name: "Cabina CDMX", Group: GroupStandard},
}

// EventRoomSeed event-venue rooms; synthetic ids keep working as room
// references until the backing store assigns real ones
var EventRoomSeed = []RoomSeed{
	{ID: "fitur:mesa-1", Name: "Cabina Palma", LegacyName: "Mesa 1", Group: GroupEvent},
	{ID: "fitur:mesa-2", Name: "Cabina Caracas", LegacyName: "Mesa 2", Group: GroupEvent},
	{ID: "fitur:mesa-3", Name: "Suite 1", LegacyName: "Mesa 3", Group: GroupEvent},
	{ID: "fitur:cabina-1", Name: "Suite 2", LegacyName: "Cabina 1", Group: GroupEvent},
	{ID: "fitur:cabina-2", Name: "Suite 3", LegacyName: "Cabina 2", Group: GroupEvent},
}

// AlternateRoomSeed alternate-site rooms
var AlternateRoomSeed = []RoomSeed{
	{ID: "mallorca:sala-palma", Name: "Sala Palma", Group: GroupAlternate},
}

// AllRoomSeeds returns every seed, optionally excluding the event catalog
func AllRoomSeeds(eventEnabled bool) []RoomSeed {
	seeds := make([]RoomSeed, 0, len(StandardRoomSeed)+len(EventRoomSeed)+len(AlternateRoomSeed))
	seeds = append(seeds, StandardRoomSeed...)
	seeds = append(seeds, AlternateRoomSeed...)
	if eventEnabled {
		seeds = append(seeds, EventRoomSeed...)
	}
	return seeds
}

// SeedGroupForName infers the room group from the seed lists.
// Used only as a one-time backfill for legacy rows created before the
// group column existed; runtime code reads Room.Group.
func SeedGroupForName(name string) RoomGroup {
	for _, s := range EventRoomSeed {
		if s.Name == name || s.LegacyName == name {
			return GroupEvent
		}
	}
	for _, s := range AlternateRoomSeed {
		if s.Name == name {
			return GroupAlternate
		}
	}
	return GroupStandard
}
