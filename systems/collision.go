package systems

import (
	"sort"

	"github.com/automoto/stonerush/components"
	cfg "github.com/automoto/stonerush/config"
	"github.com/automoto/stonerush/logger"
	"github.com/automoto/stonerush/shared/gamemath"
	"github.com/automoto/stonerush/shared/leveldata"
	"github.com/automoto/stonerush/tags"
	"github.com/sirupsen/logrus"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// contactSide is the block face a body is pushed out through.
type contactSide int

const (
	sideNone contactSide = iota
	sideTop
	sideBottom
	sideLeft
	sideRight
)

// faces marks which of a block's four faces a body may be pushed out
// through.
type faces struct {
	Top, Bottom, Left, Right bool
}

func (f faces) and(o faces) faces {
	return faces{
		Top:    f.Top && o.Top,
		Bottom: f.Bottom && o.Bottom,
		Left:   f.Left && o.Left,
		Right:  f.Right && o.Right,
	}
}

func (f faces) has(s contactSide) bool {
	switch s {
	case sideTop:
		return f.Top
	case sideBottom:
		return f.Bottom
	case sideLeft:
		return f.Left
	case sideRight:
		return f.Right
	}
	return false
}

func depthOf(pen gamemath.Penetration, s contactSide) float64 {
	switch s {
	case sideTop:
		return pen.Top
	case sideBottom:
		return pen.Bottom
	case sideLeft:
		return pen.Left
	}
	return pen.Right
}

// shallowest returns the side in allowed with the smallest penetration.
// Ties go to the earlier side in the order top, bottom, left, right.
func shallowest(pen gamemath.Penetration, allowed faces) contactSide {
	best := sideNone
	for _, s := range [...]contactSide{sideTop, sideBottom, sideLeft, sideRight} {
		if !allowed.has(s) {
			continue
		}
		if best == sideNone || depthOf(pen, s) < depthOf(pen, best) {
			best = s
		}
	}
	return best
}

// pickSide returns the shallowest exposed side the body is moving into.
// When the shallowest exposed side is one the body is moving away from,
// the next candidate is only taken if it is at most half the body deep on
// its axis; otherwise the overlap is left alone.
func pickSide(pen gamemath.Penetration, exposed, moving faces, w, h float64) contactSide {
	side := shallowest(pen, exposed.and(moving))
	if side == sideNone || side == shallowest(pen, exposed) {
		return side
	}

	limit := w / 2
	if side == sideTop || side == sideBottom {
		limit = h / 2
	}
	if depthOf(pen, side) > limit {
		return sideNone
	}
	return side
}

// exposedFaces reports which faces of a block are not covered by another
// solid block. A seam between two ground blocks is never a wall.
func exposedFaces(ecs *ecs.ECS, b gamemath.Rect) faces {
	covered := func(r gamemath.Rect) bool {
		return len(BlocksInRange(ecs, r)) > 0
	}
	return faces{
		Top:    !covered(gamemath.Rect{X: b.X + 1, Y: b.Y - 1, W: b.W - 2, H: 1}),
		Bottom: !covered(gamemath.Rect{X: b.X + 1, Y: b.Bottom(), W: b.W - 2, H: 1}),
		Left:   !covered(gamemath.Rect{X: b.X - 1, Y: b.Y + 1, W: 1, H: b.H - 2}),
		Right:  !covered(gamemath.Rect{X: b.Right(), Y: b.Y + 1, W: 1, H: b.H - 2}),
	}
}

// UpdateCollisions resolves the frame's tentative positions in a fixed
// order: level boundary, player grounding, player vs blocks, player vs
// enemies (then the dead-enemy sweep), enemies vs blocks.
func UpdateCollisions(ecs *ecs.ECS) {
	level, ok := getLevel(ecs)
	if !ok {
		return
	}

	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		player := components.Player.Get(playerEntry)
		physics := components.Physics.Get(playerEntry)
		obj := components.Object.Get(playerEntry)

		clampToLevel(level, physics, obj)

		nearby := BlocksInRange(ecs, obj.Bounds().Inflate(cfg.Collision.PlayerSearchPadding))
		setGrounded(physics, obj.Bounds(), nearby)
		resolvePlayerBlocks(ecs, player, physics, obj, nearby)
		resolvePlayerEnemies(ecs, player, obj)
	}
	sweepDeadEnemies(ecs)

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		resolveEnemyBlocks(ecs, e)
	})
}

// BlocksInRange returns the solid blocks whose bounds intersect area, in
// creation order. Destroyed blocks are never returned.
func BlocksInRange(ecs *ecs.ECS, area gamemath.Rect) []*donburi.Entry {
	space := getSpace(ecs)
	if space == nil {
		return nil
	}

	probe := resolv.NewObject(area.X, area.Y, area.W, area.H)
	space.Add(probe)
	defer space.Remove(probe)

	check := probe.Check(0, 0, tags.ResolvSolid)
	if check == nil {
		return nil
	}

	var blocks []*donburi.Entry
	seen := make(map[*resolv.Object]bool)
	for _, o := range check.ObjectsByTags(tags.ResolvSolid) {
		if seen[o] {
			continue
		}
		seen[o] = true

		entry, ok := o.Data.(*donburi.Entry)
		if !ok || !entry.Valid() || !entry.HasComponent(components.Block) {
			continue
		}
		if !components.Block.Get(entry).IsSolid() {
			continue
		}
		if !components.Object.Get(entry).Bounds().Intersects(area) {
			continue
		}
		blocks = append(blocks, entry)
	}

	sort.Slice(blocks, func(i, j int) bool {
		return components.Block.Get(blocks[i]).Order < components.Block.Get(blocks[j]).Order
	})
	return blocks
}

// clampToLevel keeps the player inside the level horizontally and below
// the top edge. Falling out of the bottom is left to the session.
func clampToLevel(level *components.LevelData, physics *components.PhysicsData, obj *components.ObjectData) {
	w, _ := obj.Size()
	x, y := obj.Position.X, obj.Position.Y

	maxX := level.Width - w
	if x < 0 || x > maxX {
		x = gamemath.ClampFloat(x, 0, maxX)
		physics.Velocity.X = 0
	}
	if y < 0 {
		y = 0
		physics.Velocity.Y = 0
	}

	if x != obj.Position.X || y != obj.Position.Y {
		obj.SetPosition(x, y)
	}
}

// isStandingOn reports whether feet rest on a solid block's top within the
// ground tolerance.
func isStandingOn(feet gamemath.Rect, blocks []*donburi.Entry) bool {
	for _, b := range blocks {
		if !components.Block.Get(b).IsSolid() {
			continue
		}
		bounds := components.Object.Get(b).Bounds()
		if !feet.OverlapsHorizontally(bounds) {
			continue
		}
		gap := feet.Bottom() - bounds.Y
		if gap <= cfg.Collision.GroundTolerance && gap >= -cfg.Collision.GroundTolerance {
			return true
		}
	}
	return false
}

func setGrounded(physics *components.PhysicsData, bounds gamemath.Rect, nearby []*donburi.Entry) {
	physics.Grounded = isStandingOn(bounds, nearby)
}

func resolvePlayerBlocks(ecs *ecs.ECS, player *components.PlayerData, physics *components.PhysicsData, obj *components.ObjectData, nearby []*donburi.Entry) {
	w, h := obj.Size()

	for _, b := range nearby {
		block := components.Block.Get(b)
		if !block.IsSolid() {
			continue
		}
		blockBounds := components.Object.Get(b).Bounds()
		bounds := obj.Bounds()
		if !bounds.Intersects(blockBounds) {
			continue
		}

		pen := gamemath.PenetrationOf(bounds, blockBounds)
		v := physics.Velocity
		moving := faces{Top: v.Y >= 0, Bottom: v.Y < 0, Left: v.X > 0, Right: v.X < 0}
		side := pickSide(pen, exposedFaces(ecs, blockBounds), moving, w, h)

		switch side {
		case sideTop:
			obj.SetPosition(obj.Position.X, blockBounds.Y-h)
			physics.Velocity.Y = 0
			physics.Grounded = true
		case sideBottom:
			obj.SetPosition(obj.Position.X, blockBounds.Bottom())
			physics.Velocity.Y = 0
		case sideLeft, sideRight:
			if player.IsRamming() && block.Type == leveldata.Cracked {
				destroyBlock(b, block)
				continue
			}
			x := blockBounds.X - w
			if side == sideRight {
				x = blockBounds.Right()
			}
			obj.SetPosition(x, obj.Position.Y)
			if player.IsRamming() {
				stopRam(player, physics)
			}
			physics.Velocity.X = 0
		}
	}
}

func destroyBlock(e *donburi.Entry, block *components.BlockData) {
	block.Destroyed = true
	obj := components.Object.Get(e)
	if obj.Body.Space != nil {
		obj.Body.Space.Remove(obj.Body)
	}
	logger.Log.WithFields(logrus.Fields{
		"x": obj.Position.X,
		"y": obj.Position.Y,
	}).Debug("cracked block destroyed")
}

func resolvePlayerEnemies(ecs *ecs.ECS, player *components.PlayerData, obj *components.ObjectData) {
	bounds := obj.Bounds()

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := components.Enemy.Get(e)
		if enemy.IsDead {
			return
		}
		if !bounds.Intersects(components.Object.Get(e).Bounds()) {
			return
		}

		if player.IsRamming() {
			enemy.IsDead = true
			components.Physics.Get(e).Velocity = gamemath.Vector{}
			logger.Log.Debug("enemy rammed")
			return
		}

		if player.TakeDamage(cfg.Player.InvulnDuration) {
			logger.Log.WithFields(logrus.Fields{
				"lives": player.Lives,
			}).Debug("player damaged")
		}
	})
}

// sweepDeadEnemies removes dead enemies from the world and the space.
func sweepDeadEnemies(ecs *ecs.ECS) {
	var dead []*donburi.Entry
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if components.Enemy.Get(e).IsDead {
			dead = append(dead, e)
		}
	})

	for _, e := range dead {
		obj := components.Object.Get(e)
		if obj.Body.Space != nil {
			obj.Body.Space.Remove(obj.Body)
		}
		ecs.World.Remove(e.Entity())
	}
}

func resolveEnemyBlocks(ecs *ecs.ECS, e *donburi.Entry) {
	enemy := components.Enemy.Get(e)
	if enemy.IsDead {
		return
	}
	physics := components.Physics.Get(e)
	obj := components.Object.Get(e)
	w, h := obj.Size()

	nearby := BlocksInRange(ecs, obj.Bounds().Inflate(cfg.Collision.EnemySearchPadding))
	setGrounded(physics, obj.Bounds(), nearby)

	// Turn around at platform edges
	if physics.Grounded && !hasGroundAhead(ecs, obj.Bounds(), enemy.PatrolDirection) {
		enemy.PatrolDirection = cfg.Opposite(enemy.PatrolDirection)
		physics.Velocity.X = cfg.Sign(enemy.PatrolDirection) * cfg.Enemy.Speed
	}

	for _, b := range nearby {
		blockBounds := components.Object.Get(b).Bounds()
		bounds := obj.Bounds()
		if !bounds.Intersects(blockBounds) {
			continue
		}

		pen := gamemath.PenetrationOf(bounds, blockBounds)
		v := physics.Velocity
		moving := faces{Top: v.Y > 0, Left: v.X > 0, Right: v.X < 0}
		switch pickSide(pen, exposedFaces(ecs, blockBounds), moving, w, h) {
		case sideTop:
			obj.SetPosition(obj.Position.X, blockBounds.Y-h)
			physics.Velocity.Y = 0
			physics.Grounded = true
		case sideLeft:
			obj.SetPosition(blockBounds.X-w, obj.Position.Y)
			bounceEnemy(enemy, physics)
		case sideRight:
			obj.SetPosition(blockBounds.Right(), obj.Position.Y)
			bounceEnemy(enemy, physics)
		}
	}
}

// hasGroundAhead probes a strip one body width ahead, just below the feet.
func hasGroundAhead(ecs *ecs.ECS, bounds gamemath.Rect, dir cfg.Direction) bool {
	ahead := gamemath.Rect{
		X: bounds.X + cfg.Sign(dir)*bounds.W,
		Y: bounds.Bottom(),
		W: bounds.W,
		H: cfg.Enemy.EdgeProbeDepth,
	}
	return len(BlocksInRange(ecs, ahead)) > 0
}

func bounceEnemy(enemy *components.EnemyData, physics *components.PhysicsData) {
	physics.Velocity.X = -physics.Velocity.X
	enemy.PatrolDirection = cfg.DirectionOf(physics.Velocity.X, enemy.PatrolDirection)
}
