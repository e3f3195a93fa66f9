package models

import (
	"context"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

var Validate = validator.New()

// 24-hour HH:mm, same pattern the schedule fields are validated against
// everywhere.
var TimePattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

func init() {
	_ = Validate.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return TimePattern.MatchString(fl.Field().String())
	})

	// Report failures under the json field name the client sent.
	Validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

type MongodbRepo struct {
	mongodbClient *mongo.Client
	dbName        string
}

func MongodbNewRepo(mongodbClient *mongo.Client, dbName string) *MongodbRepo {
	return &MongodbRepo{
		mongodbClient: mongodbClient,
		dbName:        dbName,
	}
}

func (mdb *MongodbRepo) GetCollection(ctx context.Context, colName string) (*mongo.Collection, error) {
	if mdb.mongodbClient == nil {
		return nil, fmt.Errorf("mongodb client is not initialized")
	}
	client := mdb.mongodbClient.Database(mdb.dbName).Collection(colName)
	return client, nil
}
