package game

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/broadside/components"
	"github.com/pthm-cable/broadside/config"
)

// spawnPlayer creates the controllable ship near the bottom of the field.
func (g *Game) spawnPlayer() ecs.Entity {
	cfg := config.Cfg()

	boxHalf := float32(cfg.Player.BoxHalf)
	startY := float32(cfg.Player.StartYOffset) - cfg.Derived.FieldHalfH

	pos := components.Position{X: 0, Y: startY}
	rot := components.Rotation{}
	mov := components.Movement{
		Damping:  float32(cfg.Player.Damping),
		MaxSpeed: float32(cfg.Player.MaxSpeed),
	}
	box := components.ColliderAABB{HalfW: boxHalf, HalfH: boxHalf}
	sprite := components.Sprite{
		Kind:    components.SpriteShip,
		Texture: g.texture(components.SpriteShip),
		W:       boxHalf * 2,
		H:       boxHalf * 2,
	}

	return g.playerMapper.NewEntity(&pos, &rot, &mov, &box, &sprite, &components.Player{})
}

// spawnBackground creates the static backdrop covering the whole field.
func (g *Game) spawnBackground() ecs.Entity {
	cfg := config.Cfg()

	pos := components.Position{}
	rot := components.Rotation{}
	scale := components.Scale{X: 1, Y: 1}
	sprite := components.Sprite{
		Kind:    components.SpriteBackground,
		Texture: g.texture(components.SpriteBackground),
		W:       cfg.Derived.FieldW32,
		H:       cfg.Derived.FieldH32,
	}

	return g.backgroundMapper.NewEntity(&pos, &rot, &scale, &sprite, &components.Background{})
}

// createSpawners instantiates the configured enemy spawners and the two
// mirror spawners in the bottom corners.
func (g *Game) createSpawners() {
	cfg := config.Cfg()

	for i := range cfg.Enemies {
		ec := &cfg.Enemies[i]
		boxHalf := float32(ec.BoxHalf)
		spawner := components.EnemySpawner{
			Timer:   components.NewTimer(float32(ec.Interval)),
			Texture: g.texture(components.SpriteEnemy),
			Movement: components.Movement{
				VelY:     float32(ec.VelocityY),
				AccelY:   float32(ec.AccelY),
				MaxSpeed: float32(ec.MaxSpeed),
			},
			Box:      components.ColliderAABB{HalfW: boxHalf, HalfH: boxHalf},
			Lifetime: float32(ec.Lifetime),
		}
		g.enemySpawnerMapper.NewEntity(&spawner)
	}

	inset := float32(cfg.Mirrors.EdgeInset)
	y := -cfg.Derived.FieldHalfH - inset
	corners := []struct {
		x     float32
		angle float32
	}{
		{-(cfg.Derived.FieldHalfW - inset), -mirrorAngle},
		{cfg.Derived.FieldHalfW - inset, mirrorAngle},
	}
	for _, c := range corners {
		pos := components.Position{X: c.x, Y: y}
		spawner := components.MirrorSpawner{
			Timer: components.NewTimer(float32(cfg.Mirrors.Interval)),
			Angle: c.angle,
		}
		g.mirrorSpawnerMapper.NewEntity(&pos, &spawner)
	}
}

// spawnBullet creates a bullet; it is the factory handed to the shooting
// pass, called only after its query iteration has finished.
func (g *Game) spawnBullet(x, y, velX float32) {
	cfg := config.Cfg()

	boxHalf := float32(cfg.Bullet.BoxHalf)
	pos := components.Position{X: x, Y: y}
	rot := components.Rotation{}
	mov := components.Movement{
		VelX:     velX,
		MaxSpeed: float32(cfg.Bullet.MaxSpeed),
	}
	box := components.ColliderAABB{HalfW: boxHalf, HalfH: boxHalf}
	sprite := components.Sprite{
		Kind:    components.SpriteBullet,
		Texture: g.texture(components.SpriteBullet),
		W:       boxHalf * 2,
		H:       boxHalf * 2,
	}
	life := components.Lifetime{Remaining: float32(cfg.Bullet.Lifetime)}

	g.bulletMapper.NewEntity(&pos, &rot, &mov, &box, &sprite, &life,
		&components.AutoDespawn{}, &components.Bullet{})
}

// spawnEnemy instantiates an enemy from a spawner template.
func (g *Game) spawnEnemy(x, y float32, tpl *components.EnemySpawner) {
	pos := components.Position{X: x, Y: y}
	rot := components.Rotation{}
	mov := tpl.Movement
	box := tpl.Box
	sprite := components.Sprite{
		Kind:    components.SpriteEnemy,
		Texture: tpl.Texture,
		W:       box.HalfW * 2,
		H:       box.HalfH * 2,
	}
	life := components.Lifetime{Remaining: tpl.Lifetime}

	g.enemyMapper.NewEntity(&pos, &rot, &mov, &box, &sprite, &life, &components.Enemy{})
}

// spawnMirror creates a rotated deflector bar rising from the bottom edge.
func (g *Game) spawnMirror(x, y, angle float32) {
	cfg := config.Cfg()

	pos := components.Position{X: x, Y: y}
	rot := components.Rotation{Angle: angle}
	mov := components.Movement{
		VelY:     float32(cfg.Mirrors.RiseSpeed),
		MaxSpeed: float32(cfg.Mirrors.MaxSpeed),
	}
	box := components.ColliderAABB{
		HalfW: float32(cfg.Mirrors.HalfW),
		HalfH: float32(cfg.Mirrors.HalfH),
	}
	sprite := components.Sprite{
		Kind:    components.SpriteMirror,
		Texture: g.texture(components.SpriteMirror),
		W:       box.HalfW * 2,
		H:       box.HalfH * 2,
	}
	life := components.Lifetime{Remaining: float32(cfg.Mirrors.Lifetime)}

	g.mirrorMapper.NewEntity(&pos, &rot, &mov, &box, &sprite, &life, &components.Mirror{})
}

// texture resolves a sprite kind to a texture handle, or TextureNone in
// headless mode.
func (g *Game) texture(kind components.SpriteKind) components.TextureID {
	if g.assets == nil {
		return components.TextureNone
	}
	return g.assets.Texture(kind)
}
