package dto

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	ethAddrRe = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)
	hexBlobRe = regexp.MustCompile(`^(0x)?([0-9a-fA-F]{2})*$`)
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("eth_addr", validateEthAddr)
		_ = v.RegisterValidation("hex_blob", validateHexBlob)
	}
}

// validateEthAddr accepts a 0x-prefixed 20-byte hex address.
func validateEthAddr(fl validator.FieldLevel) bool {
	return ethAddrRe.MatchString(fl.Field().String())
}

// validateHexBlob accepts optionally 0x-prefixed hex of whole bytes.
func validateHexBlob(fl validator.FieldLevel) bool {
	return hexBlobRe.MatchString(fl.Field().String())
}
