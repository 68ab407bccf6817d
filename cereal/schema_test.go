package cereal

import (
	"testing"

	"capnproto.org/go/capnp/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrajectoryMessage(t *testing.T) {
	msg, seg, err := capnp.NewMessage(capnp.SingleSegment(nil))
	require.NoError(t, err)

	trajectory, err := TrajectoryCreator(seg)
	require.NoError(t, err)
	trajectory.SetClosestIndex(7)
	trajectory.SetStopIndex(-1)
	speeds, err := trajectory.NewSpeeds(3)
	require.NoError(t, err)
	speeds.Set(0, 5)
	speeds.Set(1, 2.5)
	speeds.Set(2, 0)

	data, err := msg.Marshal()
	require.NoError(t, err)

	decoded, err := capnp.Unmarshal(data)
	require.NoError(t, err)
	got, err := ReadRootTrajectory(decoded)
	require.NoError(t, err)

	assert.Equal(t, int32(7), got.ClosestIndex())
	assert.Equal(t, int32(-1), got.StopIndex())
	assert.NotZero(t, got.LogMonoTime())
	gotSpeeds, err := got.Speeds()
	require.NoError(t, err)
	require.Equal(t, 3, gotSpeeds.Len())
	assert.Equal(t, 2.5, gotSpeeds.At(1))
}
