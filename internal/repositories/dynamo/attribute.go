package dynamo

import (
	"strconv"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"employee-records-api/internal/models"
)

// encodeItem marshals an employee record into a DynamoDB item.
func encodeItem(e models.Employee) (map[string]types.AttributeValue, error) {
	return attributevalue.MarshalMap(map[string]any(e))
}

// encodeValue marshals a single attribute value.
func encodeValue(v any) (types.AttributeValue, error) {
	return attributevalue.Marshal(v)
}

// decodeItem converts a DynamoDB item back into an employee record,
// normalizing the table's decimal number representation as it goes.
func decodeItem(item map[string]types.AttributeValue) models.Employee {
	out := make(models.Employee, len(item))
	for k, v := range item {
		out[k] = decodeValue(v)
	}
	return out
}

// decodeValue converts one attribute value to a plain Go value.
// Numbers arrive from DynamoDB as decimal strings; they are normalized
// to int64 when exact, else float64, so JSON encoding matches what the
// caller originally stored.
func decodeValue(v types.AttributeValue) any {
	switch av := v.(type) {
	case *types.AttributeValueMemberS:
		return av.Value
	case *types.AttributeValueMemberN:
		return normalizeNumber(av.Value)
	case *types.AttributeValueMemberBOOL:
		return av.Value
	case *types.AttributeValueMemberNULL:
		return nil
	case *types.AttributeValueMemberB:
		return av.Value
	case *types.AttributeValueMemberM:
		m := make(map[string]any, len(av.Value))
		for k, mv := range av.Value {
			m[k] = decodeValue(mv)
		}
		return m
	case *types.AttributeValueMemberL:
		l := make([]any, len(av.Value))
		for i, lv := range av.Value {
			l[i] = decodeValue(lv)
		}
		return l
	case *types.AttributeValueMemberSS:
		l := make([]any, len(av.Value))
		for i, s := range av.Value {
			l[i] = s
		}
		return l
	case *types.AttributeValueMemberNS:
		l := make([]any, len(av.Value))
		for i, n := range av.Value {
			l[i] = normalizeNumber(n)
		}
		return l
	case *types.AttributeValueMemberBS:
		l := make([]any, len(av.Value))
		for i, b := range av.Value {
			l[i] = b
		}
		return l
	default:
		return nil
	}
}

// normalizeNumber parses a DynamoDB decimal string: integer when exact,
// floating point otherwise. Unparseable input is passed through as the
// raw string rather than dropped.
func normalizeNumber(n string) any {
	if i, err := strconv.ParseInt(n, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(n, 64); err == nil {
		return f
	}
	return n
}
