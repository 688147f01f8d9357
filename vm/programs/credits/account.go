package credits

import (
	"bytes"
	"fmt"
	"math/bits"

	"github.com/spacemeshos/go-scale"

	"github.com/aicredit/go-aicredit/codec"
	"github.com/aicredit/go-aicredit/vm/core"
)

// Layout of the user account data.
const (
	OffsetInitialized = 0
	OffsetCredits     = 1
	UserAccountSize   = 9
)

// UserAccount is the state stored in the data of the user account.
type UserAccount struct {
	IsInitialized bool
	Credits       uint64
}

// Encode account into dst. dst must be exactly UserAccountSize long.
func (u *UserAccount) Encode(dst []byte) error {
	if len(dst) != UserAccountSize {
		return fmt.Errorf("%w: expected %d bytes, got %d", core.ErrInvalidAccountData, UserAccountSize, len(dst))
	}
	// writes stay within dst, the encoding is exactly UserAccountSize bytes
	if _, err := codec.EncodeTo(bytes.NewBuffer(dst[:0]), u); err != nil {
		return fmt.Errorf("%w: %w", core.ErrInvalidAccountData, err)
	}
	return nil
}

// AddCredits marks account as initialized and increments credits.
func (u *UserAccount) AddCredits(amount uint64) error {
	sum, carry := bits.Add64(u.Credits, amount, 0)
	if carry != 0 {
		return fmt.Errorf("%w: %d + %d", core.ErrArithmeticOverflow, u.Credits, amount)
	}
	u.IsInitialized = true
	u.Credits = sum
	return nil
}

// EncodeScale implements scale codec interface.
// Fields are written at OffsetInitialized and OffsetCredits, credits are little-endian.
func (u *UserAccount) EncodeScale(enc *scale.Encoder) (total int, err error) {
	{
		n, err := scale.EncodeBool(enc, u.IsInitialized)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeUint64(enc, u.Credits)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// DecodeScale implements scale codec interface.
// Flag byte is not validated, any non-zero value is interpreted as initialized.
func (u *UserAccount) DecodeScale(dec *scale.Decoder) (total int, err error) {
	{
		flag, n, err := scale.DecodeByte(dec)
		if err != nil {
			return total, err
		}
		total += n
		u.IsInitialized = flag != 0
	}
	{
		field, n, err := scale.DecodeUint64(dec)
		if err != nil {
			return total, err
		}
		total += n
		u.Credits = field
	}
	return total, nil
}

// DecodeUnchecked decodes any buffer of UserAccountSize bytes.
// Any non-zero flag byte is interpreted as initialized.
func DecodeUnchecked(src []byte) (UserAccount, error) {
	if len(src) != UserAccountSize {
		return UserAccount{}, fmt.Errorf("%w: expected %d bytes, got %d",
			core.ErrInvalidAccountData, UserAccountSize, len(src))
	}
	var account UserAccount
	if err := codec.Decode(src, &account); err != nil {
		return UserAccount{}, fmt.Errorf("%w: %w", core.ErrInvalidAccountData, err)
	}
	return account, nil
}

// Decode account that must have been written before.
//
// Returns ErrUninitialized if the flag byte is 0 and ErrInvalidAccountData if it is neither 0 nor 1.
func Decode(src []byte) (UserAccount, error) {
	account, err := DecodeUnchecked(src)
	if err != nil {
		return UserAccount{}, err
	}
	switch flag := src[OffsetInitialized]; flag {
	case 0:
		return UserAccount{}, core.ErrUninitialized
	case 1:
		return account, nil
	default:
		return UserAccount{}, fmt.Errorf("%w: initialized flag %d", core.ErrInvalidAccountData, flag)
	}
}

// load state from the account data.
// Data that was never written must be zeroed, otherwise it is rejected.
func load(src []byte) (UserAccount, error) {
	if len(src) == UserAccountSize && src[OffsetInitialized] == 0 {
		account, err := DecodeUnchecked(src)
		if err != nil {
			return UserAccount{}, err
		}
		if account.Credits != 0 {
			return UserAccount{}, fmt.Errorf("%w: uninitialized account holds %d credits",
				core.ErrInvalidAccountData, account.Credits)
		}
		return account, nil
	}
	return Decode(src)
}
