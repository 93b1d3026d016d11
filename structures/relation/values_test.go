package relation

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func effort(conf configuration) *ValueMappings[string, string, string] {
	m := NewValuesWith[string, string, string](conf.left, conf.right, WithInvariantChecks())
	_, existed := m.Put("Alice", "Biking", "Little")
	if existed {
		panic("fresh relation reported an existing association")
	}
	return m
}

func TestValueMappings_Put(t *testing.T) {
	for _, conf := range configurations {
		t.Run(conf.name, func(t *testing.T) {
			m := effort(conf)
			biking, ok := m.GetAllForRightKey("Biking")
			require.True(t, ok)

			prev, existed := m.Put("Alice", "Biking", "Much")
			assert.True(t, existed)
			assert.Equal(t, "Little", prev)

			val, ok := m.Get("Alice", "Biking")
			assert.True(t, ok)
			assert.Equal(t, "Much", val)
			assert.Equal(t, "Much", m.RightView().Map()["Biking"]["Alice"])
			assert.False(t, biking.Detached(), "Overwriting should not detach partners")
			val, ok = biking.Get("Alice")
			assert.True(t, ok)
			assert.Equal(t, "Much", val)
			assert.Equal(t, 1, m.Size())
			assert.NoError(t, m.Verify())
		})
	}
}

func TestValueMappings_RemoveLeftKey(t *testing.T) {
	for _, conf := range configurations {
		t.Run(conf.name, func(t *testing.T) {
			m := effort(conf)
			m.Put("Alice", "Biking", "Much")
			m.Put("Bob", "Chess", "Some")

			removed := m.RemoveLeftKey("Alice")
			assert.Equal(t, map[string]string{"Biking": "Much"}, removed)
			assert.False(t, m.ContainsLeftKey("Alice"))
			assert.False(t, m.ContainsRightKey("Biking"))
			for _, partners := range m.RightView().All() {
				assert.False(t, partners.Has("Alice"))
			}
			assert.Equal(t, map[string]map[string]string{"Chess": {"Bob": "Some"}}, m.RightView().Map())
			assert.Nil(t, m.RemoveLeftKey("Alice"))
		})
	}
}

func TestValueMappings_Get(t *testing.T) {
	m := effort(configurations[0])
	_, ok := m.Get("Alice", "Chess")
	assert.False(t, ok)
	_, ok = m.Get("Bob", "Biking")
	assert.False(t, ok)
	val, ok := m.Invert().Get("Biking", "Alice")
	assert.True(t, ok)
	assert.Equal(t, "Little", val)
}

func TestValueMappings_Remove(t *testing.T) {
	m := effort(configurations[3])
	m.Put("Alice", "Chess", "Some")
	prev, ok := m.Remove("Alice", "Biking")
	assert.True(t, ok)
	assert.Equal(t, "Little", prev)
	_, ok = m.Remove("Alice", "Biking")
	assert.False(t, ok)
	assert.Equal(t, "{Alice:{Chess:Some}}", m.String())
	assert.Equal(t, "{Chess:{Alice:Some}}", m.RightView().String())
}

func TestValueMappings_PutAll(t *testing.T) {
	m := effort(configurations[0])
	assert.True(t, m.PutAllForLeftKey("Alice", map[string]string{"Biking": "Lots", "Chess": "Some"}))
	assert.False(t, m.PutAllForLeftKey("Alice", map[string]string{"Chess": "None"}))
	val, _ := m.Get("Alice", "Chess")
	assert.Equal(t, "None", val, "Existing values should be overwritten")
	assert.True(t, m.PutAllForRightKey("Chess", map[string]string{"Bob": "Lots"}))
	assert.Equal(t, map[string]string{"Alice": "None", "Bob": "Lots"}, m.RightView().Map()["Chess"])
	assert.NoError(t, m.Verify())
}

func TestValueMappings_ReplaceRightKey(t *testing.T) {
	m := effort(configurations[1])
	m.Put("Bob", "Biking", "Some")
	biking, _ := m.GetAllForRightKey("Biking")

	prev := m.ReplaceRightKey("Biking", map[string]string{"Bob": "Lots", "Carol": "Little"})
	assert.Equal(t, map[string]string{"Alice": "Little", "Bob": "Some"}, prev)
	assert.False(t, biking.Detached())
	assert.Equal(t, map[string]string{"Bob": "Lots", "Carol": "Little"}, biking.Map())
	assert.False(t, m.ContainsLeftKey("Alice"))
	val, _ := m.Get("Bob", "Biking")
	assert.Equal(t, "Lots", val)

	prev = m.ReplaceRightKey("Biking", nil)
	assert.Len(t, prev, 2)
	assert.True(t, m.IsEmpty())
	assert.True(t, biking.Detached())
}

func TestValueMappings_NilValues(t *testing.T) {
	one := 1
	m := NewValues[string, string, *int]()
	err := requirePanicsWith(t, ErrInvalidArgument, func() {
		m.Put("a", "b", nil)
	})
	assert.Equal(t, "a", err.Key)
	requirePanicsWith(t, ErrInvalidArgument, func() {
		m.PutAllForLeftKey("a", map[string]*int{"b": &one, "c": nil})
	})
	assert.True(t, m.IsEmpty())

	m.Put("a", "b", &one)
	pm, _ := m.GetAllForLeftKey("a")
	requirePanicsWith(t, ErrInvalidArgument, func() {
		pm.Put("b", nil)
	})
	val, _ := m.Get("a", "b")
	assert.Same(t, &one, val)
}

func TestPartnerMap_Put(t *testing.T) {
	m := effort(configurations[2])
	alice, ok := m.GetAllForLeftKey("Alice")
	require.True(t, ok)

	prev, existed := alice.Put("Biking", "Lots")
	assert.True(t, existed)
	assert.Equal(t, "Little", prev)
	val, _ := m.Invert().Get("Biking", "Alice")
	assert.Equal(t, "Lots", val)

	_, existed = alice.Put("Chess", "Some")
	assert.False(t, existed)
	assert.True(t, m.ContainsRightKey("Chess"))
	assert.Equal(t, 2, alice.Len())

	prev, ok = alice.Remove("Biking")
	assert.True(t, ok)
	assert.Equal(t, "Lots", prev)
	_, ok = alice.Remove("Biking")
	assert.False(t, ok)
	assert.False(t, m.ContainsRightKey("Biking"))

	alice.Clear()
	assert.True(t, alice.Detached())
	requirePanicsWith(t, ErrDetached, func() {
		alice.Put("Chess", "None")
	})
	assert.True(t, m.IsEmpty())
}

func TestPartnerMap_All(t *testing.T) {
	m := effort(configurations[3])
	m.Put("Alice", "Chess", "Some")
	alice, _ := m.GetAllForLeftKey("Alice")
	var partners []string
	for partner, val := range alice.All() {
		partners = append(partners, partner+"="+val)
		alice.Put(partner, val+"!")
	}
	assert.Equal(t, []string{"Biking=Little", "Chess=Some"}, partners)
	assert.Equal(t, map[string]string{"Biking": "Little!", "Chess": "Some!"}, alice.Map())
	assert.Equal(t, "{Biking:Little! Chess:Some!}", alice.String())
	assert.NoError(t, m.Verify())
}

func TestValueMappings_All(t *testing.T) {
	m := effort(configurations[3])
	m.Put("Bob", "Chess", "Some")
	var got []Association[string, string, string]
	for a := range m.All() {
		got = append(got, a)
		m.Put(a.Left, a.Right, a.Value+"!")
	}
	assert.Equal(t, []Association[string, string, string]{
		{Left: "Alice", Right: "Biking", Value: "Little"},
		{Left: "Bob", Right: "Chess", Value: "Some"},
	}, got)
	assert.Equal(t, "{Alice:{Biking:Little!} Bob:{Chess:Some!}}", m.String())

	requirePanicsWith(t, ErrConcurrentModification, func() {
		for a := range m.All() {
			m.Remove(a.Left, a.Right)
		}
	})
}

func TestMapView_Put(t *testing.T) {
	m := effort(configurations[0])
	view := m.LeftView()
	prev := view.Put("Alice", map[string]string{"Chess": "Some"})
	assert.Equal(t, map[string]string{"Biking": "Little"}, prev)
	assert.False(t, m.ContainsRightKey("Biking"))

	view.Put("Bob", map[string]string{"Chess": "Lots"})
	assert.Equal(t, 2, view.Len())
	assert.Equal(t, map[string]string{"Alice": "Some", "Bob": "Lots"}, m.RightView().Map()["Chess"])

	assert.Equal(t, map[string]string{"Chess": "Lots"}, view.Delete("Bob"))
	view.Clear()
	assert.True(t, m.IsEmpty())
}

func TestValueMappings_ReadOnly(t *testing.T) {
	m := effort(configurations[0])
	ro := m.ReadOnly()
	val, ok := ro.Get("Alice", "Biking")
	assert.True(t, ok)
	assert.Equal(t, "Little", val)
	requirePanicsWith(t, ErrReadOnly, func() {
		ro.Put("Alice", "Biking", "Much")
	})
	requirePanicsWith(t, ErrReadOnly, func() {
		alice, _ := ro.LeftView().Get("Alice")
		alice.Put("Biking", "Much")
	})
	requirePanicsWith(t, ErrReadOnly, func() {
		ro.Invert().ReplaceLeftKey("Biking", nil)
	})
	val, _ = m.Get("Alice", "Biking")
	assert.Equal(t, "Little", val)
}

func TestValueMappings_ZeroValue(t *testing.T) {
	var m ValueMappings[string, int, float64]
	_, existed := m.Put("pi", 3, 3.14)
	assert.False(t, existed)
	assert.Equal(t, 1, m.Size())
	assert.Same(t, &m, m.Invert().Invert())

	var nilMappings *ValueMappings[string, int, float64]
	assert.PanicsWithValue(t, "nil ValueMappings", func() {
		nilMappings.Clear()
	})
}

func TestValueMappings_ReplaceLeftKey_Rejected(t *testing.T) {
	one, two := 1, 2
	m := NewValues[string, string, *int](WithInvariantChecks())
	m.Put("Alice", "Biking", &one)
	m.Put("Alice", "Chess", &two)
	alice, _ := m.GetAllForLeftKey("Alice")

	requirePanicsWith(t, ErrInvalidArgument, func() {
		m.ReplaceLeftKey("Alice", map[string]*int{"Golf": &one, "Chess": nil})
	})
	requirePanicsWith(t, ErrInvalidArgument, func() {
		m.ReplaceRightKey("Biking", map[string]*int{"Bob": nil})
	})
	requirePanicsWith(t, ErrInvalidArgument, func() {
		m.LeftView().Put("Alice", map[string]*int{"Chess": nil})
	})
	requirePanicsWith(t, ErrInvalidArgument, func() {
		m.RightView().Put("Chess", map[string]*int{"Alice": &one, "Bob": nil})
	})

	assert.Equal(t, map[string]*int{"Biking": &one, "Chess": &two}, m.LeftView().Map()["Alice"])
	assert.Equal(t, map[string]map[string]*int{
		"Biking": {"Alice": &one},
		"Chess":  {"Alice": &two},
	}, m.RightView().Map())
	assert.False(t, alice.Detached())
	assert.NoError(t, m.Verify())
}

func TestValueMappings_ReplaceLeftKey_RetainedPartners(t *testing.T) {
	for _, conf := range configurations {
		t.Run(conf.name, func(t *testing.T) {
			m := effort(conf)
			m.Put("Alice", "Chess", "Some")
			biking, _ := m.GetAllForRightKey("Biking")
			chess, _ := m.GetAllForRightKey("Chess")

			prev := m.ReplaceLeftKey("Alice", map[string]string{"Biking": "Much"})
			assert.Equal(t, map[string]string{"Biking": "Little", "Chess": "Some"}, prev)
			assert.False(t, biking.Detached(), "Kept partners should not be detached")
			val, ok := biking.Get("Alice")
			assert.True(t, ok)
			assert.Equal(t, "Much", val)
			assert.True(t, chess.Detached())
			assert.NoError(t, m.Verify())
		})
	}
}
