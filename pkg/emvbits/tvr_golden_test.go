package emvbits

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"gitlab.com/d21d3q/emvbits/internal/testutil"
)

func TestTVRGolden(t *testing.T) {
	fixtures := []string{
		"offline_floor_limit",
	}
	for _, name := range fixtures {
		name := name
		t.Run(name, func(t *testing.T) {
			hexStr := testutil.LoadHex(t, "tvr/"+name+".hex")
			result, err := DecodeHex(context.Background(), "95", hexStr)
			require.NoError(t, err)

			var expected, actual map[string]any
			testutil.LoadJSON(t, "tvr/"+name+".json", &expected)
			require.NoError(t, json.Unmarshal([]byte(result.String()), &actual))
			require.Equal(t, expected, actual)
		})
	}
}
