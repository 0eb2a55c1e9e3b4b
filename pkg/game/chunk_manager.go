package game

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"slices"
	"sync"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/leterax/voxel-terrain/pkg/noise"
	"github.com/leterax/voxel-terrain/pkg/voxel"
)

// ChunkManager generates and meshes chunks on a worker pool and keeps the
// results. Every chunk is built by a single task on its own grid, so workers
// never share mutable state.
type ChunkManager struct {
	cfg   voxel.Config
	field noise.Field
	pool  pond.Pool
	log   *slog.Logger

	chunks      map[voxel.ChunkCoord]*voxel.Chunk
	chunksMutex sync.RWMutex

	// Flag to track when chunks have changed
	chunksChanged      bool
	chunksChangedMutex sync.RWMutex
}

// Stats summarises the geometry held by a ChunkManager
type Stats struct {
	Chunks    int
	Faces     int
	Vertices  int
	Triangles int
}

// NewChunkManager creates a manager generating chunks with cfg and field on
// workers goroutines. A non-positive workers uses one per CPU; a nil log uses
// slog.Default().
func NewChunkManager(cfg voxel.Config, field noise.Field, workers int, log *slog.Logger) *ChunkManager {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if log == nil {
		log = slog.Default()
	}
	return &ChunkManager{
		cfg:    cfg,
		field:  field,
		pool:   pond.NewPool(workers),
		log:    log,
		chunks: make(map[voxel.ChunkCoord]*voxel.Chunk),
	}
}

// GenerateChunk generates and meshes the chunk at coord on the calling
// goroutine, replacing any chunk already stored there.
func (cm *ChunkManager) GenerateChunk(coord voxel.ChunkCoord) (*voxel.Chunk, error) {
	chunk := voxel.NewChunk(coord, cm.cfg)
	chunk.Generate(coord, cm.cfg, cm.field)

	mesh, err := chunk.BuildMesh()
	if err != nil {
		return nil, fmt.Errorf("chunk %d,%d: %w", coord.X, coord.Z, err)
	}
	cm.log.Debug("chunk meshed", "x", coord.X, "z", coord.Z, "faces", mesh.FaceCount())

	cm.storeChunk(coord, chunk)
	return chunk, nil
}

// GenerateArea generates every chunk within radius of center (a square of
// 2*radius+1 chunks per side) in parallel. It returns ctx.Err() if the
// context is cancelled first; tasks already running are left to finish.
func (cm *ChunkManager) GenerateArea(ctx context.Context, center voxel.ChunkCoord, radius int) error {
	start := time.Now()
	coords := AreaCoords(center, radius)

	var (
		wg       sync.WaitGroup
		errMutex sync.Mutex
		firstErr error
	)
	for _, coord := range coords {
		if err := ctx.Err(); err != nil {
			return err
		}
		wg.Add(1)
		cm.pool.Submit(func() {
			defer wg.Done()
			if ctx.Err() != nil {
				return
			}
			if _, err := cm.GenerateChunk(coord); err != nil {
				errMutex.Lock()
				if firstErr == nil {
					firstErr = err
				}
				errMutex.Unlock()
			}
		})
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-done:
	}
	if firstErr != nil {
		return firstErr
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	cm.log.Info("area generated",
		"center_x", center.X, "center_z", center.Z,
		"radius", radius, "chunks", len(coords),
		"elapsed", time.Since(start))
	return nil
}

// AreaCoords lists the chunk coordinates of the square of the given radius
// around center, ordered by X then Z.
func AreaCoords(center voxel.ChunkCoord, radius int) []voxel.ChunkCoord {
	if radius < 0 {
		return nil
	}
	r := int32(radius)
	coords := make([]voxel.ChunkCoord, 0, (2*radius+1)*(2*radius+1))
	for dx := -r; dx <= r; dx++ {
		for dz := -r; dz <= r; dz++ {
			coords = append(coords, voxel.ChunkCoord{X: center.X + dx, Z: center.Z + dz})
		}
	}
	return coords
}

// storeChunk stores a chunk in the chunks map with proper locking
func (cm *ChunkManager) storeChunk(coord voxel.ChunkCoord, chunk *voxel.Chunk) {
	cm.chunksMutex.Lock()
	cm.chunks[coord] = chunk
	cm.chunksMutex.Unlock()

	cm.markChunksChanged()
}

// GetChunk returns the chunk stored at coord
func (cm *ChunkManager) GetChunk(coord voxel.ChunkCoord) (*voxel.Chunk, bool) {
	cm.chunksMutex.RLock()
	defer cm.chunksMutex.RUnlock()

	chunk, ok := cm.chunks[coord]
	return chunk, ok
}

// GetChunks returns all stored chunks ordered by X then Z
func (cm *ChunkManager) GetChunks() []*voxel.Chunk {
	cm.chunksMutex.RLock()
	chunks := make([]*voxel.Chunk, 0, len(cm.chunks))
	for _, chunk := range cm.chunks {
		chunks = append(chunks, chunk)
	}
	cm.chunksMutex.RUnlock()

	slices.SortFunc(chunks, func(a, b *voxel.Chunk) int {
		return cmp.Or(cmp.Compare(a.Coord().X, b.Coord().X), cmp.Compare(a.Coord().Z, b.Coord().Z))
	})
	return chunks
}

// Stats totals the mesh sizes of every stored chunk
func (cm *ChunkManager) Stats() Stats {
	var s Stats
	for _, chunk := range cm.GetChunks() {
		s.Chunks++
		if mesh := chunk.Mesh(); mesh != nil {
			s.Faces += mesh.FaceCount()
			s.Vertices += len(mesh.Vertices)
			s.Triangles += mesh.TriangleCount()
		}
	}
	return s
}

// markChunksChanged sets the flag indicating chunks have changed
func (cm *ChunkManager) markChunksChanged() {
	cm.chunksChangedMutex.Lock()
	cm.chunksChanged = true
	cm.chunksChangedMutex.Unlock()
}

// HaveChunksChanged returns true if chunks have been stored since the last
// time this method was called
func (cm *ChunkManager) HaveChunksChanged() bool {
	cm.chunksChangedMutex.Lock()
	defer cm.chunksChangedMutex.Unlock()

	prevState := cm.chunksChanged
	cm.chunksChanged = false
	return prevState
}

// Cleanup waits for queued work and stops the worker pool
func (cm *ChunkManager) Cleanup() {
	cm.pool.StopAndWait()
}
