// The Licensed Work is (c) 2024 Remitix
// SPDX-License-Identifier: LGPL-3.0-only

package auth

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
)

var (
	ErrMalformedSignature = errors.New("signature is not a well-formed 65 byte (r,s,v) signature")
	ErrSignatureMismatch  = errors.New("recovered signer does not match claimed signer")
	ErrExpired            = errors.New("authorization deadline has passed")
	// ErrNonceUsed is returned by nonce stores when an authorization nonce
	// has already been burned for the signer and kind.
	ErrNonceUsed = errors.New("authorization nonce already used")
)

// Verifier recovers signers from typed-data authorizations. Verification is
// pure: replay protection is the caller's concern.
type Verifier struct {
	now func() time.Time
}

func NewVerifier() *Verifier {
	return &Verifier{now: time.Now}
}

// Hash reconstructs the typed-data digest for the kind's schema under the
// given domain.
func Hash(kind Kind, domain Domain, message apitypes.TypedDataMessage) ([]byte, error) {
	typedData := apitypes.TypedData{
		Types: apitypes.Types{
			"EIP712Domain": []apitypes.Type{
				{Name: "name", Type: "string"},
				{Name: "version", Type: "string"},
				{Name: "chainId", Type: "uint256"},
				{Name: "verifyingContract", Type: "address"},
			},
			kind.primaryType(): kind.fieldTypes(),
		},
		PrimaryType: kind.primaryType(),
		Domain: apitypes.TypedDataDomain{
			Name:              DomainName,
			Version:           DomainVersion,
			ChainId:           math.NewHexOrDecimal256(domain.ChainID),
			VerifyingContract: domain.VerifyingContract.Hex(),
		},
		Message: message,
	}

	domainSeparator, err := typedData.HashStruct("EIP712Domain", typedData.Domain.Map())
	if err != nil {
		return []byte{}, err
	}

	typedDataHash, err := typedData.HashStruct(typedData.PrimaryType, typedData.Message)
	if err != nil {
		return []byte{}, err
	}

	rawData := []byte(fmt.Sprintf("\x19\x01%s%s", string(domainSeparator), string(typedDataHash)))
	return crypto.Keccak256(rawData), nil
}

// Verify checks the authorization's deadline and signature and returns the
// recovered signer. Deadlines are unix seconds, compared against a seconds
// clock.
func (v *Verifier) Verify(a *Authorization) (common.Address, error) {
	if v.now().Unix() > a.Deadline {
		return common.Address{}, ErrExpired
	}

	if len(a.Signature) != 65 {
		return common.Address{}, ErrMalformedSignature
	}
	sig := make([]byte, 65)
	copy(sig, a.Signature)
	if sig[64] >= 27 {
		sig[64] -= 27 // Transform V from 27/28 to 0/1
	}
	if sig[64] > 1 {
		return common.Address{}, ErrMalformedSignature
	}

	digest, err := Hash(a.Kind, a.Domain, a.Message)
	if err != nil {
		return common.Address{}, err
	}

	pub, err := crypto.SigToPub(digest, sig)
	if err != nil {
		return common.Address{}, ErrMalformedSignature
	}

	recovered := crypto.PubkeyToAddress(*pub)
	if !bytes.Equal(recovered.Bytes(), a.Signer.Bytes()) {
		return common.Address{}, ErrSignatureMismatch
	}
	return recovered, nil
}
