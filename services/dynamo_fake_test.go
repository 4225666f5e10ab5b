package services

import (
	"context"
	"sort"
	"strings"
	"sync"

	"loveconnect_server/models"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// fakeDynamo is an in-memory DynamoAPI good enough for the expressions the
// services actually use. Items are stored marshaled, exactly as DynamoDB
// would hold them.
type fakeDynamo struct {
	mu     sync.Mutex
	tables map[string][]map[string]types.AttributeValue
}

var fakeKeySchemas = map[string][]string{
	models.UsersTable:    {"email"},
	models.ProfilesTable: {"userId"},
	models.MatchesTable:  {"pairKey"},
	models.MessagesTable: {"matchId", "createdAt"},
}

func newFakeDynamo() *fakeDynamo {
	return &fakeDynamo{tables: map[string][]map[string]types.AttributeValue{}}
}

var _ DynamoAPI = (*fakeDynamo)(nil)

func stringAttr(av types.AttributeValue) string {
	if s, ok := av.(*types.AttributeValueMemberS); ok {
		return s.Value
	}
	return ""
}

func sameKey(item, key map[string]types.AttributeValue, schema []string) bool {
	for _, attr := range schema {
		want, ok := key[attr]
		if !ok {
			return false
		}
		if stringAttr(item[attr]) != stringAttr(want) {
			return false
		}
	}
	return true
}

func (f *fakeDynamo) GetItem(_ context.Context, tableName string, key map[string]types.AttributeValue) (map[string]types.AttributeValue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, item := range f.tables[tableName] {
		if sameKey(item, key, fakeKeySchemas[tableName]) {
			return item, nil
		}
	}
	return nil, ErrItemNotFound
}

func (f *fakeDynamo) PutItem(_ context.Context, tableName string, item interface{}) error {
	marshaled, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	schema := fakeKeySchemas[tableName]
	for i, existing := range f.tables[tableName] {
		if sameKey(existing, marshaled, schema) {
			f.tables[tableName][i] = marshaled
			return nil
		}
	}
	f.tables[tableName] = append(f.tables[tableName], marshaled)
	return nil
}

func (f *fakeDynamo) PutItemIfAbsent(_ context.Context, tableName string, item interface{}, keyAttribute string) error {
	marshaled, err := attributevalue.MarshalMap(item)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	want := stringAttr(marshaled[keyAttribute])
	for _, existing := range f.tables[tableName] {
		if stringAttr(existing[keyAttribute]) == want {
			return ErrConditionFailed
		}
	}
	f.tables[tableName] = append(f.tables[tableName], marshaled)
	return nil
}

// UpdateItem supports "SET a = :x, b = :y" expressions with optional #name
// placeholders, which is all the services emit.
func (f *fakeDynamo) UpdateItem(
	_ context.Context,
	tableName string,
	updateExpression string,
	key map[string]types.AttributeValue,
	expressionAttributeValues map[string]types.AttributeValue,
	expressionAttributeNames map[string]string,
) (map[string]types.AttributeValue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	schema := fakeKeySchemas[tableName]
	for i, item := range f.tables[tableName] {
		if !sameKey(item, key, schema) {
			continue
		}
		updated := map[string]types.AttributeValue{}
		for k, v := range item {
			updated[k] = v
		}
		assignments := strings.TrimPrefix(updateExpression, "SET ")
		for _, assignment := range strings.Split(assignments, ",") {
			parts := strings.SplitN(strings.TrimSpace(assignment), "=", 2)
			attr := strings.TrimSpace(parts[0])
			if resolved, ok := expressionAttributeNames[attr]; ok {
				attr = resolved
			}
			placeholder := strings.TrimSpace(parts[1])
			updated[attr] = expressionAttributeValues[placeholder]
		}
		f.tables[tableName][i] = updated
		return updated, nil
	}
	return map[string]types.AttributeValue{}, nil
}

func (f *fakeDynamo) QueryItemsWithIndex(
	ctx context.Context,
	tableName, indexName, keyConditionExpression string,
	expressionAttributeValues map[string]types.AttributeValue,
	expressionAttributeNames map[string]string,
	limit int32,
) ([]map[string]types.AttributeValue, error) {
	return f.QueryItemsWithOptions(ctx, tableName, keyConditionExpression, expressionAttributeValues, expressionAttributeNames, limit, true)
}

// QueryItemsWithOptions handles single-attribute equality conditions like
// "matchId = :matchId", ordering by the createdAt sort key when present.
func (f *fakeDynamo) QueryItemsWithOptions(
	_ context.Context,
	tableName, keyConditionExpression string,
	expressionAttributeValues map[string]types.AttributeValue,
	expressionAttributeNames map[string]string,
	limit int32,
	ascending bool,
) ([]map[string]types.AttributeValue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	parts := strings.SplitN(keyConditionExpression, "=", 2)
	attr := strings.TrimSpace(parts[0])
	if resolved, ok := expressionAttributeNames[attr]; ok {
		attr = resolved
	}
	want := stringAttr(expressionAttributeValues[strings.TrimSpace(parts[1])])

	var matched []map[string]types.AttributeValue
	for _, item := range f.tables[tableName] {
		if stringAttr(item[attr]) == want {
			matched = append(matched, item)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		less := stringAttr(matched[i]["createdAt"]) < stringAttr(matched[j]["createdAt"])
		if ascending {
			return less
		}
		return !less
	})

	if limit > 0 && int(limit) < len(matched) {
		matched = matched[:limit]
	}
	return matched, nil
}

// ScanItems supports the three filter shapes the services use: "a <> :x",
// "a = :x" and "contains(a, :x)".
func (f *fakeDynamo) ScanItems(
	_ context.Context,
	tableName, filterExpression string,
	expressionAttributeValues map[string]types.AttributeValue,
	expressionAttributeNames map[string]string,
	limit int32,
) ([]map[string]types.AttributeValue, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	matches := func(item map[string]types.AttributeValue) bool {
		switch {
		case filterExpression == "":
			return true
		case strings.HasPrefix(filterExpression, "contains("):
			inner := strings.TrimSuffix(strings.TrimPrefix(filterExpression, "contains("), ")")
			parts := strings.SplitN(inner, ",", 2)
			attr := strings.TrimSpace(parts[0])
			want := stringAttr(expressionAttributeValues[strings.TrimSpace(parts[1])])
			list, ok := item[attr].(*types.AttributeValueMemberL)
			if !ok {
				return false
			}
			for _, member := range list.Value {
				if stringAttr(member) == want {
					return true
				}
			}
			return false
		case strings.Contains(filterExpression, "<>"):
			parts := strings.SplitN(filterExpression, "<>", 2)
			attr := strings.TrimSpace(parts[0])
			want := stringAttr(expressionAttributeValues[strings.TrimSpace(parts[1])])
			return stringAttr(item[attr]) != want
		default:
			parts := strings.SplitN(filterExpression, "=", 2)
			attr := strings.TrimSpace(parts[0])
			want := stringAttr(expressionAttributeValues[strings.TrimSpace(parts[1])])
			return stringAttr(item[attr]) == want
		}
	}

	var results []map[string]types.AttributeValue
	for _, item := range f.tables[tableName] {
		if matches(item) {
			results = append(results, item)
			if limit > 0 && len(results) == int(limit) {
				break
			}
		}
	}
	return results, nil
}
