package feedonomics

import (
	"net/url"
	"strconv"
	"strings"
)

// PreprocessorBaseURL is the endpoint of the external BigCommerce
// preprocessor service.
const PreprocessorBaseURL = "https://preprocess.feedonomics.com/preprocess/run_preprocess.php"

const (
	preprocessorClient   = "bigcommerce"
	preprocessorProtocol = "api"
)

// PreprocessorInfo is the parameter object serialized into a preprocessor
// URL. Nil pointer fields are omitted from the query string; empty strings
// are emitted with an empty value.
type PreprocessorInfo struct {
	ConnectionInfo PreprocessorConnection
	FileInfo       *PreprocessorFileInfo
}

// PreprocessorConnection carries the flat connection fields plus the nested
// filter, price-list, and location-inventory sub-objects.
type PreprocessorConnection struct {
	AccessToken            *string
	StoreHash              *string
	ChannelIDs             *string
	AdditionalParentFields *string
	AdditionalChildFields  *string
	IncludeEmptyValues     *bool
	Filter                 *PreprocessorFilter
	PriceList              *PreprocessorPriceList
	LocationInventory      *PreprocessorLocationInventory
}

type PreprocessorFilter struct {
	IsVisible    *bool
	Categories   *string
	Availability *string
}

type PreprocessorPriceList struct {
	ID       *string
	Currency *string
}

type PreprocessorLocationInventory struct {
	LocationIDs *string
	Aggregate   *bool
}

type PreprocessorFileInfo struct {
	RequestType *string
	FileType    *string
}

// BuildPreprocessorURL serializes the parameter object into the preprocessor
// URL. Every value is percent-encoded twice: the downstream preprocessor
// decodes the query string once before use, so a single encoding would
// corrupt values containing reserved characters. This is a wire contract with
// the external service; parameters emit in declaration order.
func (c *Client) BuildPreprocessorURL(info PreprocessorInfo) string {
	var params []string

	appendParam(&params, "connection_info", "client", preprocessorClient)
	appendParam(&params, "connection_info", "protocol", preprocessorProtocol)

	conn := info.ConnectionInfo
	appendString(&params, "connection_info", "access_token", conn.AccessToken)
	appendString(&params, "connection_info", "store_hash", conn.StoreHash)
	appendString(&params, "connection_info", "channel_ids", conn.ChannelIDs)
	appendString(&params, "connection_info", "additional_parent_fields", conn.AdditionalParentFields)
	appendString(&params, "connection_info", "additional_child_fields", conn.AdditionalChildFields)
	appendBool(&params, "connection_info", "include_empty_values", conn.IncludeEmptyValues)

	if f := conn.Filter; f != nil {
		appendNestedBool(&params, "connection_info", "filter", "is_visible", f.IsVisible)
		appendNestedString(&params, "connection_info", "filter", "categories", f.Categories)
		appendNestedString(&params, "connection_info", "filter", "availability", f.Availability)
	}
	if p := conn.PriceList; p != nil {
		appendNestedString(&params, "connection_info", "price_list", "id", p.ID)
		appendNestedString(&params, "connection_info", "price_list", "currency", p.Currency)
	}
	if li := conn.LocationInventory; li != nil {
		appendNestedString(&params, "connection_info", "location_inventory", "location_ids", li.LocationIDs)
		appendNestedBool(&params, "connection_info", "location_inventory", "aggregate", li.Aggregate)
	}

	if fi := info.FileInfo; fi != nil {
		appendString(&params, "file_info", "request_type", fi.RequestType)
		appendString(&params, "file_info", "file_type", fi.FileType)
	}

	return PreprocessorBaseURL + "?" + strings.Join(params, "&")
}

// encodeValue applies the double percent-encoding the preprocessor expects.
func encodeValue(v string) string {
	return url.QueryEscape(url.QueryEscape(v))
}

func appendParam(params *[]string, prefix, key, value string) {
	*params = append(*params, prefix+"["+key+"]="+encodeValue(value))
}

func appendNestedParam(params *[]string, prefix, sub, key, value string) {
	*params = append(*params, prefix+"["+sub+"]["+key+"]="+encodeValue(value))
}

func appendString(params *[]string, prefix, key string, value *string) {
	if value == nil {
		return
	}
	appendParam(params, prefix, key, *value)
}

func appendBool(params *[]string, prefix, key string, value *bool) {
	if value == nil {
		return
	}
	appendParam(params, prefix, key, strconv.FormatBool(*value))
}

func appendNestedString(params *[]string, prefix, sub, key string, value *string) {
	if value == nil {
		return
	}
	appendNestedParam(params, prefix, sub, key, *value)
}

func appendNestedBool(params *[]string, prefix, sub, key string, value *bool) {
	if value == nil {
		return
	}
	appendNestedParam(params, prefix, sub, key, strconv.FormatBool(*value))
}

// String returns a pointer to v, for building PreprocessorInfo literals.
func String(v string) *string { return &v }

// Bool returns a pointer to v, for building PreprocessorInfo literals.
func Bool(v bool) *bool { return &v }
