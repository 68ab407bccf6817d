package settings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetSegmentSize(t *testing.T) {
	assert.Equal(t, int64(ROUTE_SEGMENT_SIZE), GetSegmentSize("routeTrack"))
	assert.Equal(t, int64(DEFAULT_SEGMENT_SIZE), GetSegmentSize("pose"))
	assert.Equal(t, int64(DEFAULT_SEGMENT_SIZE), GetSegmentSize("trajectory"))
}
