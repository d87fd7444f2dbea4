package domain

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCatalogMarshalKeepsOrderAndShape(t *testing.T) {
	catalog := Catalog{
		{Name: "Zumba", Description: "Dance", Schedule: "Mondays", MaxParticipants: 5, Participants: []string{"a@mergington.edu"}},
		{Name: "Archery", Description: "Bows", Schedule: "Tuesdays", MaxParticipants: 8},
	}

	body, err := json.Marshal(catalog)
	require.NoError(t, err)

	raw := string(body)
	require.Less(t, strings.Index(raw, `"Zumba"`), strings.Index(raw, `"Archery"`))

	var decoded map[string]map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))
	require.Len(t, decoded, 2)
	require.Equal(t, "Dance", decoded["Zumba"]["description"])
	require.Equal(t, "Mondays", decoded["Zumba"]["schedule"])
	require.EqualValues(t, 5, decoded["Zumba"]["max_participants"])
	require.Equal(t, []any{"a@mergington.edu"}, decoded["Zumba"]["participants"])
	require.Equal(t, []any{}, decoded["Archery"]["participants"], "empty roster encodes as []")
	require.NotContains(t, decoded["Zumba"], "name")
}

func TestEmptyCatalogMarshalsToEmptyObject(t *testing.T) {
	body, err := json.Marshal(Catalog{})
	require.NoError(t, err)
	require.JSONEq(t, `{}`, string(body))
}

func TestActivityHelpers(t *testing.T) {
	activity := Activity{Name: "Chess Club", MaxParticipants: 2, Participants: []string{"a@mergington.edu", "b@mergington.edu"}}

	require.True(t, activity.HasParticipant("a@mergington.edu"))
	require.False(t, activity.HasParticipant("c@mergington.edu"))
	require.Equal(t, 0, activity.SpotsLeft())

	clone := activity.Clone()
	clone.Participants[0] = "z@mergington.edu"
	require.Equal(t, "a@mergington.edu", activity.Participants[0])

	_, ok := Catalog{activity}.Lookup("Chess Club")
	require.True(t, ok)
	_, ok = Catalog{activity}.Lookup("Go Club")
	require.False(t, ok)
}
