package packet

import (
	"fmt"

	"github.com/mickamy/mcnet/net/codec"
)

// LoginStart is Login/Serverbound/0x00: the client announcing its username.
type LoginStart struct {
	Username string
}

func (LoginStart) ID() int32 { return 0x00 }

func (p LoginStart) Encode(dst []byte) ([]byte, error) {
	return codec.WriteString(dst, p.Username), nil
}

func decodeLoginStart(r *codec.Reader) (Packet, error) {
	name, err := r.ReadString()
	if err != nil {
		return nil, fmt.Errorf("packet: login start: %w", err)
	}
	return LoginStart{Username: name}, nil
}

// LoginDisconnect is Login/Clientbound/0x00: a JSON reason sent in lieu of
// completing login.
type LoginDisconnect struct {
	ReasonJSON string
}

func (LoginDisconnect) ID() int32 { return 0x00 }

func (p LoginDisconnect) Encode(dst []byte) ([]byte, error) {
	return codec.WriteString(dst, p.ReasonJSON), nil
}

func decodeLoginDisconnect(r *codec.Reader) (Packet, error) {
	s, err := r.ReadString()
	if err != nil {
		return nil, fmt.Errorf("packet: login disconnect: %w", err)
	}
	return LoginDisconnect{ReasonJSON: s}, nil
}

// EncryptionRequest is Login/Clientbound/0x01: the server's public key and
// verify token, the trigger for the client to begin EnableEncryption.
type EncryptionRequest struct {
	ServerID    string
	PublicKey   []byte
	VerifyToken []byte
}

func (EncryptionRequest) ID() int32 { return 0x01 }

func (p EncryptionRequest) Encode(dst []byte) ([]byte, error) {
	dst = codec.WriteString(dst, p.ServerID)
	dst = codec.WriteArray(dst, p.PublicKey, codec.WriteByte)
	dst = codec.WriteArray(dst, p.VerifyToken, codec.WriteByte)
	return dst, nil
}

func decodeEncryptionRequest(r *codec.Reader) (Packet, error) {
	serverID, err := r.ReadString()
	if err != nil {
		return nil, fmt.Errorf("packet: encryption request: server id: %w", err)
	}
	pubKey, err := codec.ReadArray(r, (*codec.Reader).ReadByte)
	if err != nil {
		return nil, fmt.Errorf("packet: encryption request: public key: %w", err)
	}
	token, err := codec.ReadArray(r, (*codec.Reader).ReadByte)
	if err != nil {
		return nil, fmt.Errorf("packet: encryption request: verify token: %w", err)
	}
	return EncryptionRequest{ServerID: serverID, PublicKey: pubKey, VerifyToken: token}, nil
}

// EncryptionResponse is Login/Serverbound/0x01: the client's encrypted
// shared secret and verify token, completing the key exchange.
type EncryptionResponse struct {
	SharedSecret []byte
	VerifyToken  []byte
}

func (EncryptionResponse) ID() int32 { return 0x01 }

func (p EncryptionResponse) Encode(dst []byte) ([]byte, error) {
	dst = codec.WriteArray(dst, p.SharedSecret, codec.WriteByte)
	dst = codec.WriteArray(dst, p.VerifyToken, codec.WriteByte)
	return dst, nil
}

func decodeEncryptionResponse(r *codec.Reader) (Packet, error) {
	secret, err := codec.ReadArray(r, (*codec.Reader).ReadByte)
	if err != nil {
		return nil, fmt.Errorf("packet: encryption response: shared secret: %w", err)
	}
	token, err := codec.ReadArray(r, (*codec.Reader).ReadByte)
	if err != nil {
		return nil, fmt.Errorf("packet: encryption response: verify token: %w", err)
	}
	return EncryptionResponse{SharedSecret: secret, VerifyToken: token}, nil
}

// LoginSuccess is Login/Clientbound/0x02: login completed, the client
// should transition to Play.
type LoginSuccess struct {
	UUID     [16]byte
	Username string
}

func (LoginSuccess) ID() int32 { return 0x02 }

func (p LoginSuccess) Encode(dst []byte) ([]byte, error) {
	dst = append(dst, p.UUID[:]...)
	dst = codec.WriteString(dst, p.Username)
	return dst, nil
}

func decodeLoginSuccess(r *codec.Reader) (Packet, error) {
	idBytes, err := r.ReadBytes(16)
	if err != nil {
		return nil, fmt.Errorf("packet: login success: uuid: %w", err)
	}
	name, err := r.ReadString()
	if err != nil {
		return nil, fmt.Errorf("packet: login success: username: %w", err)
	}
	var id [16]byte
	copy(id[:], idBytes)
	return LoginSuccess{UUID: id, Username: name}, nil
}

// SetCompression is Login/Clientbound/0x03: the threshold above which
// subsequent packets are compressed (compression itself is out of scope;
// the core only models the threshold field).
type SetCompression struct {
	Threshold int32
}

func (SetCompression) ID() int32 { return 0x03 }

func (p SetCompression) Encode(dst []byte) ([]byte, error) {
	return codec.WriteVarInt32(dst, p.Threshold), nil
}

func decodeSetCompression(r *codec.Reader) (Packet, error) {
	v, err := r.ReadVarInt32()
	if err != nil {
		return nil, fmt.Errorf("packet: set compression: %w", err)
	}
	return SetCompression{Threshold: v}, nil
}

func init() {
	register(Login, Serverbound, 0x00, 0, decodeLoginStart)
	register(Login, Clientbound, 0x00, 0, decodeLoginDisconnect)
	register(Login, Clientbound, 0x01, 0, decodeEncryptionRequest)
	register(Login, Serverbound, 0x01, 0, decodeEncryptionResponse)
	register(Login, Clientbound, 0x02, 0, decodeLoginSuccess)
	register(Login, Clientbound, 0x03, 0, decodeSetCompression)
}
