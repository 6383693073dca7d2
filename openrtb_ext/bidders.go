package openrtb_ext

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"

	"github.com/xeipuuv/gojsonschema"
)

type BidderName string

const (
	BidderIx BidderName = "ix"
)

var bidderMap = map[string]BidderName{
	"ix": BidderIx,
}

// GetBidderName returns the BidderName for the given string, if it exists.
// The second argument is true if the name was valid, and false otherwise.
func GetBidderName(name string) (BidderName, bool) {
	bidderName, ok := bidderMap[name]
	return bidderName, ok
}

func (name BidderName) MarshalJSON() ([]byte, error) {
	return []byte(name), nil
}

func (name *BidderName) String() string {
	if name == nil {
		return ""
	}
	return string(*name)
}

// The BidderParamValidator is used to enforce bidrequest.imp[i].ext.{anyBidder} values.
//
// This is treated differently from the other types because we rely on JSON-schemas to validate bidder params.
type BidderParamValidator interface {
	Validate(name BidderName, ext json.RawMessage) error
	// Schema returns the JSON schema used to perform validation.
	Schema(name BidderName) string
}

// NewBidderParamsValidator makes a BidderParamValidator, assuming all the necessary files exist in the filesystem.
// This will error if, for example, a Bidder gets added but no JSON schema is written for them.
func NewBidderParamsValidator(schemaDirectory string) (BidderParamValidator, error) {
	schemaContents := make(map[BidderName]string, len(bidderMap))
	schemas := make(map[BidderName]*gojsonschema.Schema, len(bidderMap))
	for bidderString, bidderName := range bidderMap {
		fileBytes, err := ioutil.ReadFile(fmt.Sprintf("%s/%s.json", schemaDirectory, bidderString))
		if err != nil {
			return nil, fmt.Errorf("Failed to read JSON schema from file %s/%s.json. %v", schemaDirectory, bidderString, err)
		}
		schemaLoader := gojsonschema.NewStringLoader(string(fileBytes))
		loadedSchema, err := gojsonschema.NewSchema(schemaLoader)
		if err != nil {
			return nil, fmt.Errorf("Failed to load the JSON schema from file %s/%s.json. %v", schemaDirectory, bidderString, err)
		}
		schemas[bidderName] = loadedSchema
		schemaContents[bidderName] = string(fileBytes)
	}

	return &bidderParamValidator{
		schemaContents: schemaContents,
		parsedSchemas:  schemas,
	}, nil
}

type bidderParamValidator struct {
	schemaContents map[BidderName]string
	parsedSchemas  map[BidderName]*gojsonschema.Schema
}

func (validator *bidderParamValidator) Validate(name BidderName, ext json.RawMessage) error {
	schema, ok := validator.parsedSchemas[name]
	if !ok {
		return fmt.Errorf("unknown bidder: %s", name)
	}
	result, err := schema.Validate(gojsonschema.NewBytesLoader(ext))
	if err != nil {
		return err
	}
	if !result.Valid() {
		errBuilder := bytes.NewBuffer(make([]byte, 0, 300))
		for _, err := range result.Errors() {
			errBuilder.WriteString(err.String())
		}
		return fmt.Errorf("%s", errBuilder.String())
	}
	return nil
}

func (validator *bidderParamValidator) Schema(name BidderName) string {
	return validator.schemaContents[name]
}
