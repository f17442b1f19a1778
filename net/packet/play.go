package packet

import (
	"encoding/json"
	"fmt"

	"github.com/mickamy/mcnet/net/codec"
)

// The Play/Clientbound packet set, 0x00 through 0x13. Field lists are the
// fixed, non-negotiable wire shapes of the protocol phase that dominates a
// connection's lifetime; RawTail fields mark where game-mechanics data
// (slots, entity metadata, object data) begins and is handed off uninterpreted.

type KeepAlive struct {
	KeepAliveID int32
}

func (KeepAlive) ID() int32 { return 0x00 }
func (p KeepAlive) Encode(dst []byte) ([]byte, error) {
	return codec.WriteInt32(dst, p.KeepAliveID), nil
}
func decodeKeepAlive(r *codec.Reader) (Packet, error) {
	v, err := r.ReadInt32()
	if err != nil {
		return nil, fmt.Errorf("packet: keep alive: %w", err)
	}
	return KeepAlive{KeepAliveID: v}, nil
}

type JoinGame struct {
	EntityID   int32
	GameMode   byte
	Dimension  int8
	Difficulty byte
	MaxPlayers byte
}

func (JoinGame) ID() int32 { return 0x01 }
func (p JoinGame) Encode(dst []byte) ([]byte, error) {
	dst = codec.WriteInt32(dst, p.EntityID)
	dst = append(dst, p.GameMode, byte(p.Dimension), p.Difficulty, p.MaxPlayers)
	return dst, nil
}
func decodeJoinGame(r *codec.Reader) (Packet, error) {
	entityID, err := r.ReadInt32()
	if err != nil {
		return nil, fmt.Errorf("packet: join game: entity id: %w", err)
	}
	gameMode, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("packet: join game: game mode: %w", err)
	}
	dim, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("packet: join game: dimension: %w", err)
	}
	difficulty, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("packet: join game: difficulty: %w", err)
	}
	maxPlayers, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("packet: join game: max players: %w", err)
	}
	return JoinGame{
		EntityID:   entityID,
		GameMode:   gameMode,
		Dimension:  int8(dim), //nolint:gosec // reinterpreting bits, not converting value
		Difficulty: difficulty,
		MaxPlayers: maxPlayers,
	}, nil
}

type ChatMessage struct {
	JSON string
}

func (ChatMessage) ID() int32 { return 0x02 }
func (p ChatMessage) Encode(dst []byte) ([]byte, error) {
	return codec.WriteString(dst, p.JSON), nil
}
func decodeChatMessage(r *codec.Reader) (Packet, error) {
	var raw json.RawMessage
	if err := r.ReadJSON(&raw); err != nil {
		return nil, fmt.Errorf("packet: chat message: %w", err)
	}
	return ChatMessage{JSON: string(raw)}, nil
}

type TimeUpdate struct {
	WorldAge  int64
	TimeOfDay int64
}

func (TimeUpdate) ID() int32 { return 0x03 }
func (p TimeUpdate) Encode(dst []byte) ([]byte, error) {
	dst = codec.WriteInt64(dst, p.WorldAge)
	dst = codec.WriteInt64(dst, p.TimeOfDay)
	return dst, nil
}
func decodeTimeUpdate(r *codec.Reader) (Packet, error) {
	age, err := r.ReadInt64()
	if err != nil {
		return nil, fmt.Errorf("packet: time update: world age: %w", err)
	}
	tod, err := r.ReadInt64()
	if err != nil {
		return nil, fmt.Errorf("packet: time update: time of day: %w", err)
	}
	return TimeUpdate{WorldAge: age, TimeOfDay: tod}, nil
}

type EntityEquipment struct {
	EntityID int32
	Slot     int16
	Item     RawTail
}

func (EntityEquipment) ID() int32 { return 0x04 }
func (p EntityEquipment) Encode(dst []byte) ([]byte, error) {
	dst = codec.WriteInt32(dst, p.EntityID)
	dst = codec.WriteInt16(dst, p.Slot)
	dst = writeRawTail(dst, p.Item)
	return dst, nil
}
func decodeEntityEquipment(r *codec.Reader) (Packet, error) {
	entityID, err := r.ReadInt32()
	if err != nil {
		return nil, fmt.Errorf("packet: entity equipment: entity id: %w", err)
	}
	slot, err := r.ReadInt16()
	if err != nil {
		return nil, fmt.Errorf("packet: entity equipment: slot: %w", err)
	}
	item, err := readRawTail(r)
	if err != nil {
		return nil, fmt.Errorf("packet: entity equipment: item: %w", err)
	}
	return EntityEquipment{EntityID: entityID, Slot: slot, Item: item}, nil
}

type SpawnPosition struct {
	X, Y, Z int32
}

func (SpawnPosition) ID() int32 { return 0x05 }
func (p SpawnPosition) Encode(dst []byte) ([]byte, error) {
	dst = codec.WriteInt32(dst, p.X)
	dst = codec.WriteInt32(dst, p.Y)
	dst = codec.WriteInt32(dst, p.Z)
	return dst, nil
}
func decodeSpawnPosition(r *codec.Reader) (Packet, error) {
	x, err := r.ReadInt32()
	if err != nil {
		return nil, fmt.Errorf("packet: spawn position: x: %w", err)
	}
	y, err := r.ReadInt32()
	if err != nil {
		return nil, fmt.Errorf("packet: spawn position: y: %w", err)
	}
	z, err := r.ReadInt32()
	if err != nil {
		return nil, fmt.Errorf("packet: spawn position: z: %w", err)
	}
	return SpawnPosition{X: x, Y: y, Z: z}, nil
}

type UpdateHealth struct {
	Health     float32
	Food       int16
	Saturation float32
}

func (UpdateHealth) ID() int32 { return 0x06 }
func (p UpdateHealth) Encode(dst []byte) ([]byte, error) {
	dst = codec.WriteFloat32(dst, p.Health)
	dst = codec.WriteInt16(dst, p.Food)
	dst = codec.WriteFloat32(dst, p.Saturation)
	return dst, nil
}
func decodeUpdateHealth(r *codec.Reader) (Packet, error) {
	health, err := r.ReadFloat32()
	if err != nil {
		return nil, fmt.Errorf("packet: update health: health: %w", err)
	}
	food, err := r.ReadInt16()
	if err != nil {
		return nil, fmt.Errorf("packet: update health: food: %w", err)
	}
	sat, err := r.ReadFloat32()
	if err != nil {
		return nil, fmt.Errorf("packet: update health: saturation: %w", err)
	}
	return UpdateHealth{Health: health, Food: food, Saturation: sat}, nil
}

type Respawn struct {
	Dimension int8
}

func (Respawn) ID() int32 { return 0x07 }
func (p Respawn) Encode(dst []byte) ([]byte, error) {
	return append(dst, byte(p.Dimension)), nil
}
func decodeRespawn(r *codec.Reader) (Packet, error) {
	b, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("packet: respawn: %w", err)
	}
	return Respawn{Dimension: int8(b)}, nil //nolint:gosec // reinterpreting bits, not converting value
}

// PlayerPositionAndLook carries absolute fixed-point coordinates
// (world units * 32) rather than doubles, matching the core's pre-Netty
// wire revision.
type PlayerPositionAndLook struct {
	X, Stance, Z int32
	OnGround     bool
}

func (PlayerPositionAndLook) ID() int32 { return 0x08 }
func (p PlayerPositionAndLook) Encode(dst []byte) ([]byte, error) {
	dst = codec.WriteInt32(dst, p.X)
	dst = codec.WriteInt32(dst, p.Stance)
	dst = codec.WriteBool(dst, p.OnGround)
	dst = codec.WriteInt32(dst, p.Z)
	return dst, nil
}
func decodePlayerPositionAndLook(r *codec.Reader) (Packet, error) {
	x, err := r.ReadInt32()
	if err != nil {
		return nil, fmt.Errorf("packet: player position and look: x: %w", err)
	}
	stance, err := r.ReadInt32()
	if err != nil {
		return nil, fmt.Errorf("packet: player position and look: stance: %w", err)
	}
	onGround, err := r.ReadBool()
	if err != nil {
		return nil, fmt.Errorf("packet: player position and look: on ground: %w", err)
	}
	z, err := r.ReadInt32()
	if err != nil {
		return nil, fmt.Errorf("packet: player position and look: z: %w", err)
	}
	return PlayerPositionAndLook{X: x, Stance: stance, Z: z, OnGround: onGround}, nil
}

type HeldItemChange struct {
	Slot int8
}

func (HeldItemChange) ID() int32 { return 0x09 }
func (p HeldItemChange) Encode(dst []byte) ([]byte, error) {
	return append(dst, byte(p.Slot)), nil
}
func decodeHeldItemChange(r *codec.Reader) (Packet, error) {
	b, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("packet: held item change: %w", err)
	}
	return HeldItemChange{Slot: int8(b)}, nil //nolint:gosec // reinterpreting bits, not converting value
}

type UseBed struct {
	EntityID int32
	X        int32
	Y        byte
	Z        int32
}

func (UseBed) ID() int32 { return 0x0A }
func (p UseBed) Encode(dst []byte) ([]byte, error) {
	dst = codec.WriteInt32(dst, p.EntityID)
	dst = codec.WriteInt32(dst, p.X)
	dst = append(dst, p.Y)
	dst = codec.WriteInt32(dst, p.Z)
	return dst, nil
}
func decodeUseBed(r *codec.Reader) (Packet, error) {
	entityID, err := r.ReadInt32()
	if err != nil {
		return nil, fmt.Errorf("packet: use bed: entity id: %w", err)
	}
	x, err := r.ReadInt32()
	if err != nil {
		return nil, fmt.Errorf("packet: use bed: x: %w", err)
	}
	y, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("packet: use bed: y: %w", err)
	}
	z, err := r.ReadInt32()
	if err != nil {
		return nil, fmt.Errorf("packet: use bed: z: %w", err)
	}
	return UseBed{EntityID: entityID, X: x, Y: y, Z: z}, nil
}

type Animation struct {
	EntityID    int32
	AnimationID byte
}

func (Animation) ID() int32 { return 0x0B }
func (p Animation) Encode(dst []byte) ([]byte, error) {
	dst = codec.WriteInt32(dst, p.EntityID)
	dst = append(dst, p.AnimationID)
	return dst, nil
}
func decodeAnimation(r *codec.Reader) (Packet, error) {
	entityID, err := r.ReadInt32()
	if err != nil {
		return nil, fmt.Errorf("packet: animation: entity id: %w", err)
	}
	animID, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("packet: animation: animation id: %w", err)
	}
	return Animation{EntityID: entityID, AnimationID: animID}, nil
}

type SpawnPlayer struct {
	EntityID    int32
	PlayerUUID  string
	PlayerName  string
	X, Y, Z     int32
	Yaw, Pitch  int8
	CurrentItem int16
	Metadata    RawTail
}

func (SpawnPlayer) ID() int32 { return 0x0C }
func (p SpawnPlayer) Encode(dst []byte) ([]byte, error) {
	dst = codec.WriteVarInt32(dst, p.EntityID)
	dst = codec.WriteString(dst, p.PlayerUUID)
	dst = codec.WriteString(dst, p.PlayerName)
	dst = codec.WriteInt32(dst, p.X)
	dst = codec.WriteInt32(dst, p.Y)
	dst = codec.WriteInt32(dst, p.Z)
	dst = append(dst, byte(p.Yaw), byte(p.Pitch))
	dst = codec.WriteInt16(dst, p.CurrentItem)
	dst = writeRawTail(dst, p.Metadata)
	return dst, nil
}
func decodeSpawnPlayer(r *codec.Reader) (Packet, error) {
	entityID, err := r.ReadVarInt32()
	if err != nil {
		return nil, fmt.Errorf("packet: spawn player: entity id: %w", err)
	}
	uid, err := r.ReadString()
	if err != nil {
		return nil, fmt.Errorf("packet: spawn player: uuid: %w", err)
	}
	name, err := r.ReadString()
	if err != nil {
		return nil, fmt.Errorf("packet: spawn player: name: %w", err)
	}
	x, err := r.ReadInt32()
	if err != nil {
		return nil, fmt.Errorf("packet: spawn player: x: %w", err)
	}
	y, err := r.ReadInt32()
	if err != nil {
		return nil, fmt.Errorf("packet: spawn player: y: %w", err)
	}
	z, err := r.ReadInt32()
	if err != nil {
		return nil, fmt.Errorf("packet: spawn player: z: %w", err)
	}
	yaw, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("packet: spawn player: yaw: %w", err)
	}
	pitch, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("packet: spawn player: pitch: %w", err)
	}
	item, err := r.ReadInt16()
	if err != nil {
		return nil, fmt.Errorf("packet: spawn player: current item: %w", err)
	}
	meta, err := readRawTail(r)
	if err != nil {
		return nil, fmt.Errorf("packet: spawn player: metadata: %w", err)
	}
	return SpawnPlayer{
		EntityID: entityID, PlayerUUID: uid, PlayerName: name,
		X: x, Y: y, Z: z,
		Yaw: int8(yaw), Pitch: int8(pitch), //nolint:gosec // reinterpreting bits, not converting value
		CurrentItem: item, Metadata: meta,
	}, nil
}

type CollectItem struct {
	CollectedEntityID int32
	CollectorEntityID int32
}

func (CollectItem) ID() int32 { return 0x0D }
func (p CollectItem) Encode(dst []byte) ([]byte, error) {
	dst = codec.WriteInt32(dst, p.CollectedEntityID)
	dst = codec.WriteInt32(dst, p.CollectorEntityID)
	return dst, nil
}
func decodeCollectItem(r *codec.Reader) (Packet, error) {
	collected, err := r.ReadInt32()
	if err != nil {
		return nil, fmt.Errorf("packet: collect item: collected: %w", err)
	}
	collector, err := r.ReadInt32()
	if err != nil {
		return nil, fmt.Errorf("packet: collect item: collector: %w", err)
	}
	return CollectItem{CollectedEntityID: collected, CollectorEntityID: collector}, nil
}

type SpawnObject struct {
	EntityID   int32
	Type       int8
	X, Y, Z    int32
	Pitch, Yaw int8
	ObjectData RawTail
}

func (SpawnObject) ID() int32 { return 0x0E }
func (p SpawnObject) Encode(dst []byte) ([]byte, error) {
	dst = codec.WriteVarInt32(dst, p.EntityID)
	dst = append(dst, byte(p.Type))
	dst = codec.WriteInt32(dst, p.X)
	dst = codec.WriteInt32(dst, p.Y)
	dst = codec.WriteInt32(dst, p.Z)
	dst = append(dst, byte(p.Pitch), byte(p.Yaw))
	dst = writeRawTail(dst, p.ObjectData)
	return dst, nil
}
func decodeSpawnObject(r *codec.Reader) (Packet, error) {
	entityID, err := r.ReadVarInt32()
	if err != nil {
		return nil, fmt.Errorf("packet: spawn object: entity id: %w", err)
	}
	typ, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("packet: spawn object: type: %w", err)
	}
	x, err := r.ReadInt32()
	if err != nil {
		return nil, fmt.Errorf("packet: spawn object: x: %w", err)
	}
	y, err := r.ReadInt32()
	if err != nil {
		return nil, fmt.Errorf("packet: spawn object: y: %w", err)
	}
	z, err := r.ReadInt32()
	if err != nil {
		return nil, fmt.Errorf("packet: spawn object: z: %w", err)
	}
	pitch, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("packet: spawn object: pitch: %w", err)
	}
	yaw, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("packet: spawn object: yaw: %w", err)
	}
	data, err := readRawTail(r)
	if err != nil {
		return nil, fmt.Errorf("packet: spawn object: object data: %w", err)
	}
	return SpawnObject{
		EntityID: entityID, Type: int8(typ), //nolint:gosec // reinterpreting bits, not converting value
		X: x, Y: y, Z: z,
		Pitch: int8(pitch), Yaw: int8(yaw), //nolint:gosec // reinterpreting bits, not converting value
		ObjectData: data,
	}, nil
}

type SpawnMob struct {
	EntityID                         int32
	Type                             byte
	X, Y, Z                          int32
	Yaw, Pitch, HeadPitch            int8
	VelocityX, VelocityY, VelocityZ  int16
	Metadata                         RawTail
}

func (SpawnMob) ID() int32 { return 0x0F }
func (p SpawnMob) Encode(dst []byte) ([]byte, error) {
	dst = codec.WriteVarInt32(dst, p.EntityID)
	dst = append(dst, p.Type)
	dst = codec.WriteInt32(dst, p.X)
	dst = codec.WriteInt32(dst, p.Y)
	dst = codec.WriteInt32(dst, p.Z)
	dst = append(dst, byte(p.Yaw), byte(p.Pitch), byte(p.HeadPitch))
	dst = codec.WriteInt16(dst, p.VelocityX)
	dst = codec.WriteInt16(dst, p.VelocityY)
	dst = codec.WriteInt16(dst, p.VelocityZ)
	dst = writeRawTail(dst, p.Metadata)
	return dst, nil
}
func decodeSpawnMob(r *codec.Reader) (Packet, error) {
	entityID, err := r.ReadVarInt32()
	if err != nil {
		return nil, fmt.Errorf("packet: spawn mob: entity id: %w", err)
	}
	typ, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("packet: spawn mob: type: %w", err)
	}
	x, err := r.ReadInt32()
	if err != nil {
		return nil, fmt.Errorf("packet: spawn mob: x: %w", err)
	}
	y, err := r.ReadInt32()
	if err != nil {
		return nil, fmt.Errorf("packet: spawn mob: y: %w", err)
	}
	z, err := r.ReadInt32()
	if err != nil {
		return nil, fmt.Errorf("packet: spawn mob: z: %w", err)
	}
	yaw, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("packet: spawn mob: yaw: %w", err)
	}
	pitch, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("packet: spawn mob: pitch: %w", err)
	}
	headPitch, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("packet: spawn mob: head pitch: %w", err)
	}
	vx, err := r.ReadInt16()
	if err != nil {
		return nil, fmt.Errorf("packet: spawn mob: velocity x: %w", err)
	}
	vy, err := r.ReadInt16()
	if err != nil {
		return nil, fmt.Errorf("packet: spawn mob: velocity y: %w", err)
	}
	vz, err := r.ReadInt16()
	if err != nil {
		return nil, fmt.Errorf("packet: spawn mob: velocity z: %w", err)
	}
	meta, err := readRawTail(r)
	if err != nil {
		return nil, fmt.Errorf("packet: spawn mob: metadata: %w", err)
	}
	return SpawnMob{
		EntityID: entityID, Type: typ,
		X: x, Y: y, Z: z,
		Yaw: int8(yaw), Pitch: int8(pitch), HeadPitch: int8(headPitch), //nolint:gosec // reinterpreting bits, not converting value
		VelocityX: vx, VelocityY: vy, VelocityZ: vz,
		Metadata: meta,
	}, nil
}

type SpawnPainting struct {
	EntityID  int32
	Title     string
	X, Y, Z   int32
	Direction int32
}

func (SpawnPainting) ID() int32 { return 0x10 }
func (p SpawnPainting) Encode(dst []byte) ([]byte, error) {
	dst = codec.WriteVarInt32(dst, p.EntityID)
	dst = codec.WriteString(dst, p.Title)
	dst = codec.WriteInt32(dst, p.X)
	dst = codec.WriteInt32(dst, p.Y)
	dst = codec.WriteInt32(dst, p.Z)
	dst = codec.WriteInt32(dst, p.Direction)
	return dst, nil
}
func decodeSpawnPainting(r *codec.Reader) (Packet, error) {
	entityID, err := r.ReadVarInt32()
	if err != nil {
		return nil, fmt.Errorf("packet: spawn painting: entity id: %w", err)
	}
	title, err := r.ReadString()
	if err != nil {
		return nil, fmt.Errorf("packet: spawn painting: title: %w", err)
	}
	x, err := r.ReadInt32()
	if err != nil {
		return nil, fmt.Errorf("packet: spawn painting: x: %w", err)
	}
	y, err := r.ReadInt32()
	if err != nil {
		return nil, fmt.Errorf("packet: spawn painting: y: %w", err)
	}
	z, err := r.ReadInt32()
	if err != nil {
		return nil, fmt.Errorf("packet: spawn painting: z: %w", err)
	}
	direction, err := r.ReadInt32()
	if err != nil {
		return nil, fmt.Errorf("packet: spawn painting: direction: %w", err)
	}
	return SpawnPainting{EntityID: entityID, Title: title, X: x, Y: y, Z: z, Direction: direction}, nil
}

type SpawnExperienceOrb struct {
	EntityID int32
	X, Y, Z  int32
	Count    int16
}

func (SpawnExperienceOrb) ID() int32 { return 0x11 }
func (p SpawnExperienceOrb) Encode(dst []byte) ([]byte, error) {
	dst = codec.WriteVarInt32(dst, p.EntityID)
	dst = codec.WriteInt32(dst, p.X)
	dst = codec.WriteInt32(dst, p.Y)
	dst = codec.WriteInt32(dst, p.Z)
	dst = codec.WriteInt16(dst, p.Count)
	return dst, nil
}
func decodeSpawnExperienceOrb(r *codec.Reader) (Packet, error) {
	entityID, err := r.ReadVarInt32()
	if err != nil {
		return nil, fmt.Errorf("packet: spawn experience orb: entity id: %w", err)
	}
	x, err := r.ReadInt32()
	if err != nil {
		return nil, fmt.Errorf("packet: spawn experience orb: x: %w", err)
	}
	y, err := r.ReadInt32()
	if err != nil {
		return nil, fmt.Errorf("packet: spawn experience orb: y: %w", err)
	}
	z, err := r.ReadInt32()
	if err != nil {
		return nil, fmt.Errorf("packet: spawn experience orb: z: %w", err)
	}
	count, err := r.ReadInt16()
	if err != nil {
		return nil, fmt.Errorf("packet: spawn experience orb: count: %w", err)
	}
	return SpawnExperienceOrb{EntityID: entityID, X: x, Y: y, Z: z, Count: count}, nil
}

type EntityVelocity struct {
	EntityID                         int32
	VelocityX, VelocityY, VelocityZ int16
}

func (EntityVelocity) ID() int32 { return 0x12 }
func (p EntityVelocity) Encode(dst []byte) ([]byte, error) {
	dst = codec.WriteVarInt32(dst, p.EntityID)
	dst = codec.WriteInt16(dst, p.VelocityX)
	dst = codec.WriteInt16(dst, p.VelocityY)
	dst = codec.WriteInt16(dst, p.VelocityZ)
	return dst, nil
}
func decodeEntityVelocity(r *codec.Reader) (Packet, error) {
	entityID, err := r.ReadVarInt32()
	if err != nil {
		return nil, fmt.Errorf("packet: entity velocity: entity id: %w", err)
	}
	vx, err := r.ReadInt16()
	if err != nil {
		return nil, fmt.Errorf("packet: entity velocity: velocity x: %w", err)
	}
	vy, err := r.ReadInt16()
	if err != nil {
		return nil, fmt.Errorf("packet: entity velocity: velocity y: %w", err)
	}
	vz, err := r.ReadInt16()
	if err != nil {
		return nil, fmt.Errorf("packet: entity velocity: velocity z: %w", err)
	}
	return EntityVelocity{EntityID: entityID, VelocityX: vx, VelocityY: vy, VelocityZ: vz}, nil
}

type DestroyEntities struct {
	EntityIDs []int32
}

func (DestroyEntities) ID() int32 { return 0x13 }
func (p DestroyEntities) Encode(dst []byte) ([]byte, error) {
	dst = append(dst, byte(len(p.EntityIDs))) //nolint:gosec // entity-destroy batches never approach 255 entries
	for _, id := range p.EntityIDs {
		dst = codec.WriteInt32(dst, id)
	}
	return dst, nil
}
func decodeDestroyEntities(r *codec.Reader) (Packet, error) {
	count, err := r.ReadByte()
	if err != nil {
		return nil, fmt.Errorf("packet: destroy entities: count: %w", err)
	}
	ids := make([]int32, 0, count)
	for i := byte(0); i < count; i++ {
		id, err := r.ReadInt32()
		if err != nil {
			return nil, fmt.Errorf("packet: destroy entities: id %d: %w", i, err)
		}
		ids = append(ids, id)
	}
	return DestroyEntities{EntityIDs: ids}, nil
}

func init() {
	register(Play, Clientbound, 0x00, 4, decodeKeepAlive)
	register(Play, Clientbound, 0x01, 8, decodeJoinGame)
	register(Play, Clientbound, 0x02, 0, decodeChatMessage)
	register(Play, Clientbound, 0x03, 16, decodeTimeUpdate)
	register(Play, Clientbound, 0x04, 0, decodeEntityEquipment)
	register(Play, Clientbound, 0x05, 12, decodeSpawnPosition)
	register(Play, Clientbound, 0x06, 10, decodeUpdateHealth)
	register(Play, Clientbound, 0x07, 1, decodeRespawn)
	register(Play, Clientbound, 0x08, 13, decodePlayerPositionAndLook)
	register(Play, Clientbound, 0x09, 1, decodeHeldItemChange)
	register(Play, Clientbound, 0x0A, 13, decodeUseBed)
	register(Play, Clientbound, 0x0B, 5, decodeAnimation)
	register(Play, Clientbound, 0x0C, 0, decodeSpawnPlayer)
	register(Play, Clientbound, 0x0D, 8, decodeCollectItem)
	register(Play, Clientbound, 0x0E, 0, decodeSpawnObject)
	register(Play, Clientbound, 0x0F, 0, decodeSpawnMob)
	register(Play, Clientbound, 0x10, 0, decodeSpawnPainting)
	register(Play, Clientbound, 0x11, 0, decodeSpawnExperienceOrb)
	register(Play, Clientbound, 0x12, 0, decodeEntityVelocity)
	register(Play, Clientbound, 0x13, 0, decodeDestroyEntities)
}
