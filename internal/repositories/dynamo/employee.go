package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/sirupsen/logrus"

	"employee-records-api/internal/models"
	"employee-records-api/internal/repositories"
)

// EmployeeRepository implements repositories.EmployeeRepository against
// a single DynamoDB table keyed by the id attribute.
type EmployeeRepository struct {
	client TableAPI
	table  string
	logger *logrus.Logger
}

// NewEmployeeRepository creates a DynamoDB-backed employee repository
func NewEmployeeRepository(client TableAPI, table string, logger *logrus.Logger) *EmployeeRepository {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &EmployeeRepository{
		client: client,
		table:  table,
		logger: logger,
	}
}

// List scans the full table, following LastEvaluatedKey pagination until
// every page is consumed.
func (r *EmployeeRepository) List(ctx context.Context) ([]models.Employee, error) {
	var employees []models.Employee
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.table),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, fmt.Errorf("scan employees: %w", err)
		}

		for _, item := range out.Items {
			employees = append(employees, decodeItem(item))
		}
		r.logger.WithField("count", len(employees)).Debug("Scan page consumed")

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	return employees, nil
}

// Get performs a point lookup by ID
func (r *EmployeeRepository) Get(ctx context.Context, id string) (models.Employee, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.table),
		Key:       r.key(id),
	})
	if err != nil {
		return nil, fmt.Errorf("get employee %s: %w", id, err)
	}

	if len(out.Item) == 0 {
		return nil, repositories.NotFoundError(id)
	}

	return decodeItem(out.Item), nil
}

// Put writes the full record, replacing any existing item
func (r *EmployeeRepository) Put(ctx context.Context, employee models.Employee) error {
	item, err := encodeItem(employee)
	if err != nil {
		return fmt.Errorf("marshal employee %s: %w", employee.ID(), err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.table),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("put employee %s: %w", employee.ID(), err)
	}

	return nil
}

// SetAttribute applies a single-attribute SET update expression and
// returns the stored value as reported by UPDATED_NEW.
func (r *EmployeeRepository) SetAttribute(ctx context.Context, id, attribute string, value any) (any, error) {
	encoded, err := encodeValue(value)
	if err != nil {
		return nil, fmt.Errorf("marshal attribute %s: %w", attribute, err)
	}

	out, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.table),
		Key:                       r.key(id),
		UpdateExpression:          aws.String("SET #attr = :value"),
		ExpressionAttributeNames:  map[string]string{"#attr": attribute},
		ExpressionAttributeValues: map[string]types.AttributeValue{":value": encoded},
		ReturnValues:              types.ReturnValueUpdatedNew,
	})
	if err != nil {
		return nil, fmt.Errorf("update employee %s: %w", id, err)
	}

	return decodeValue(out.Attributes[attribute]), nil
}

// Delete removes the record with the given ID
func (r *EmployeeRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.table),
		Key:       r.key(id),
	})
	if err != nil {
		return fmt.Errorf("delete employee %s: %w", id, err)
	}

	return nil
}

func (r *EmployeeRepository) key(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		models.IDAttribute: &types.AttributeValueMemberS{Value: id},
	}
}
