// Package db persists per-session preferences, in DynamoDB when an endpoint is
// configured and in memory otherwise.
package db

import (
	"context"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/pkg/errors"
)

// Prefs is an opaque bag of display preferences.
type Prefs map[string]string

var ErrNotFound = errors.New("preferences not found")

type Store interface {
	Get(ctx context.Context, id string) (Prefs, error)
	Put(ctx context.Context, id string, p Prefs) error
	Delete(ctx context.Context, id string) error
}

// Open returns a DynamoDB backed store when endpoint is set, otherwise an
// in-memory one.
func Open(endpoint, region, table string) (Store, error) {
	if endpoint == "" {
		return NewMemoryStore(), nil
	}
	sess, err := session.NewSession(&aws.Config{
		Region:   aws.String(region),
		Endpoint: aws.String(endpoint),
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not create a DynamoDB session")
	}
	return NewDynamoStore(dynamodb.New(sess), table), nil
}

type MemoryStore struct {
	mu    sync.RWMutex
	prefs map[string]Prefs
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{prefs: make(map[string]Prefs)}
}

func (m *MemoryStore) Get(_ context.Context, id string) (Prefs, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.prefs[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyPrefs(p), nil
}

func (m *MemoryStore) Put(_ context.Context, id string, p Prefs) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prefs[id] = copyPrefs(p)
	return nil
}

func (m *MemoryStore) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.prefs, id)
	return nil
}

func copyPrefs(p Prefs) Prefs {
	res := make(Prefs, len(p))
	for k, v := range p {
		res[k] = v
	}
	return res
}

type item struct {
	PK      string            `dynamodbav:"PK"`
	Prefs   map[string]string `dynamodbav:"Prefs"`
	Updated int64             `dynamodbav:"Updated"`
}

type DynamoStore struct {
	client dynamodbiface.DynamoDBAPI
	table  string
}

func NewDynamoStore(client dynamodbiface.DynamoDBAPI, table string) *DynamoStore {
	return &DynamoStore{client: client, table: table}
}

func key(id string) map[string]*dynamodb.AttributeValue {
	return map[string]*dynamodb.AttributeValue{
		"PK": {S: aws.String(id)},
	}
}

func (d *DynamoStore) Get(ctx context.Context, id string) (Prefs, error) {
	out, err := d.client.GetItemWithContext(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(d.table),
		Key:       key(id),
	})
	if err != nil {
		return nil, errors.Wrap(err, "error from DynamoDB")
	}
	if len(out.Item) == 0 {
		return nil, ErrNotFound
	}
	var it item
	if err := dynamodbattribute.UnmarshalMap(out.Item, &it); err != nil {
		return nil, errors.Wrap(err, "could not decode preferences")
	}
	if it.Prefs == nil {
		return Prefs{}, nil
	}
	return it.Prefs, nil
}

func (d *DynamoStore) Put(ctx context.Context, id string, p Prefs) error {
	av, err := dynamodbattribute.MarshalMap(item{PK: id, Prefs: p, Updated: time.Now().Unix()})
	if err != nil {
		return errors.Wrap(err, "could not encode preferences")
	}
	_, err = d.client.PutItemWithContext(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(d.table),
		Item:      av,
	})
	return errors.Wrap(err, "error from DynamoDB")
}

func (d *DynamoStore) Delete(ctx context.Context, id string) error {
	_, err := d.client.DeleteItemWithContext(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(d.table),
		Key:       key(id),
	})
	return errors.Wrap(err, "error from DynamoDB")
}
