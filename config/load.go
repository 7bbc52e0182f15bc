package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Overrides is a parsed archetype file layered over the current settings.
// Nothing changes until Apply is called.
type Overrides struct {
	Player     PlayerConfig
	Enemies    map[string]EnemyTypeConfig
	Combat     CombatConfig
	Animations map[string]map[StateID]ClipDef
}

type archetypeFile struct {
	Player     yaml.Node                     `yaml:"player"`
	Enemies    map[string]yaml.Node          `yaml:"enemies"`
	Combat     yaml.Node                     `yaml:"combat"`
	Animations map[string]map[string]ClipDef `yaml:"animations"`
}

// LoadFile reads an archetype YAML file. See Load.
func LoadFile(path string) (*Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	o, err := Load(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return o, nil
}

// Load parses an archetype document. Keys that are absent keep their current
// values; a new enemy type starts from the default type. Every resulting
// attack, enemy type and clip is validated.
func Load(r io.Reader) (*Overrides, error) {
	var file archetypeFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode archetypes: %w", err)
	}

	o := &Overrides{
		Player:     Player,
		Enemies:    make(map[string]EnemyTypeConfig, len(Enemy.Types)),
		Combat:     Combat,
		Animations: make(map[string]map[StateID]ClipDef, len(CharacterAnimations)),
	}
	for name, t := range Enemy.Types {
		o.Enemies[name] = t
	}
	for key, clips := range CharacterAnimations {
		copied := make(map[StateID]ClipDef, len(clips))
		for state, def := range clips {
			copied[state] = def
		}
		o.Animations[key] = copied
	}

	if !file.Player.IsZero() {
		if err := decodeStrict(&file.Player, &o.Player); err != nil {
			return nil, fmt.Errorf("decode player: %w", err)
		}
	}
	if !file.Combat.IsZero() {
		if err := decodeStrict(&file.Combat, &o.Combat); err != nil {
			return nil, fmt.Errorf("decode combat: %w", err)
		}
	}
	for name, node := range file.Enemies {
		t, ok := o.Enemies[name]
		if !ok {
			t = Enemy.Types[Enemy.DefaultType]
			t.Name = name
		}
		if err := decodeStrict(&node, &t); err != nil {
			return nil, fmt.Errorf("decode enemy %q: %w", name, err)
		}
		o.Enemies[name] = t
	}
	for key, clips := range file.Animations {
		target, ok := o.Animations[key]
		if !ok {
			target = make(map[StateID]ClipDef, len(clips))
			o.Animations[key] = target
		}
		for stateName, def := range clips {
			state, ok := ParseState(stateName)
			if !ok {
				return nil, fmt.Errorf("animations %q: unknown state %q", key, stateName)
			}
			target[state] = def
		}
	}

	if err := o.validate(); err != nil {
		return nil, err
	}
	return o, nil
}

// decodeStrict decodes a sub-document with unknown keys rejected, which
// yaml.Node.Decode does not do on its own.
func decodeStrict(node *yaml.Node, out any) error {
	data, err := yaml.Marshal(node)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(out)
}

func (o *Overrides) validate() error {
	if o.Player.Health <= 0 {
		return fmt.Errorf("player: health must be positive")
	}
	if err := o.Player.Attack.Validate(); err != nil {
		return fmt.Errorf("player: %w", err)
	}
	if o.Combat.PlayerInvulnFrames < 0 {
		return fmt.Errorf("combat: player_invuln_frames must not be negative")
	}
	for _, t := range o.Enemies {
		if err := t.Validate(); err != nil {
			return err
		}
	}
	for key, clips := range o.Animations {
		for state, def := range clips {
			if def.Frames <= 0 || def.TicksPerFrame <= 0 {
				return fmt.Errorf("animations %q: clip %s needs positive frames and ticks_per_frame", key, state)
			}
		}
	}
	return nil
}

// Apply installs the overrides as the active configuration. Actors spawned
// afterwards pick up the new values.
func (o *Overrides) Apply() {
	Player = o.Player
	Combat = o.Combat
	Enemy.Types = o.Enemies
	CharacterAnimations = o.Animations
}
