package voxel

import (
	"github.com/go-gl/mathgl/mgl32"
)

// ChunkCoord represents the x,z coordinates of a chunk column
type ChunkCoord struct {
	X, Z int32
}

// WorldToChunkCoord converts a world column to the coordinates of the chunk
// containing it. Negative positions round towards negative infinity.
func WorldToChunkCoord(worldX, worldZ int, chunkSize int) ChunkCoord {
	return ChunkCoord{
		X: int32(floorDiv(worldX, chunkSize)),
		Z: int32(floorDiv(worldZ, chunkSize)),
	}
}

// WorldToLocalCoord converts a world column to local coordinates within its chunk
func WorldToLocalCoord(worldX, worldZ int, chunkSize int) (int, int) {
	localX := worldX % chunkSize
	localZ := worldZ % chunkSize

	// Handle negative coordinates properly
	if localX < 0 {
		localX += chunkSize
	}
	if localZ < 0 {
		localZ += chunkSize
	}

	return localX, localZ
}

// LocalToWorld converts local column coordinates in chunk c to world coordinates
func (c ChunkCoord) LocalToWorld(x, z int, chunkSize int) (int, int) {
	return int(c.X)*chunkSize + x, int(c.Z)*chunkSize + z
}

// WorldOrigin returns the world position of the chunk's (0,0,0) corner
func (c ChunkCoord) WorldOrigin(chunkSize int) mgl32.Vec3 {
	return mgl32.Vec3{
		float32(int(c.X) * chunkSize),
		0,
		float32(int(c.Z) * chunkSize),
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
