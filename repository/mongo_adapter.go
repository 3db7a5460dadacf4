package repository

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/digitalbuddiesspune/stylishtouches-sub001/models"
)

// familyCollections maps each family to its backing collection.
var familyCollections = map[models.Family]string{
	models.FamilyGeneral:     "products",
	models.FamilyContactLens: "contactlenses",
	models.FamilyAccessory:   "accessories",
	models.FamilySkincare:    "skincares",
	models.FamilyBag:         "bags",
	models.FamilyMenShoe:     "menshoes",
	models.FamilyWomenShoe:   "womenshoes",
}

// MongoFamilyStore implements FamilyStore over one Mongo database holding
// the seven family collections.
type MongoFamilyStore struct {
	db *mongo.Database
}

func NewMongoFamilyStore(db *mongo.Database) *MongoFamilyStore {
	return &MongoFamilyStore{db: db}
}

func (s *MongoFamilyStore) collection(family models.Family) *mongo.Collection {
	return s.db.Collection(familyCollections[family])
}

func (s *MongoFamilyStore) Find(ctx context.Context, family models.Family, pred models.Predicate, sort []SortField, skip, limit int64) ([]models.Record, error) {
	findOptions := options.Find()
	if skip > 0 {
		findOptions.SetSkip(skip)
	}
	if limit > 0 {
		findOptions.SetLimit(limit)
	}
	if len(sort) > 0 {
		findOptions.SetSort(toSortDoc(sort))
	}

	cursor, err := s.collection(family).Find(ctx, ToFilter(pred), findOptions)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", family, err)
	}
	defer cursor.Close(ctx)

	return decodeRecords(ctx, cursor, family)
}

func (s *MongoFamilyStore) Count(ctx context.Context, family models.Family, pred models.Predicate) (int64, error) {
	total, err := s.collection(family).CountDocuments(ctx, ToFilter(pred))
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", family, err)
	}
	return total, nil
}

func (s *MongoFamilyStore) FindByID(ctx context.Context, family models.Family, id string) (models.Record, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// Malformed IDs can never match a document.
		return nil, ErrRecordNotFound
	}

	res := s.collection(family).FindOne(ctx, bson.M{"_id": oid})
	rec, err := decodeRecord(res, family)
	if err == mongo.ErrNoDocuments {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find %s by id: %w", family, err)
	}
	return rec, nil
}

func (s *MongoFamilyStore) GroupCount(ctx context.Context, family models.Family, pred models.Predicate, field string) (map[string]int64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: ToFilter(pred)}},
		{{Key: "$group", Value: bson.M{
			"_id":   bson.M{"$toUpper": bson.M{"$ifNull": bson.A{"$" + field, ""}}},
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := s.collection(family).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("group count %s by %s: %w", family, field, err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Key   string `bson:"_id"`
		Count int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode group counts: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Key] = row.Count
	}
	return counts, nil
}

// ToFilter translates a backend-agnostic predicate into a bson filter.
// Terms are combined under $and so repeated fields never clobber each other.
func ToFilter(pred models.Predicate) bson.M {
	if pred.IsEmpty() {
		return bson.M{}
	}

	terms := bson.A{}
	for _, term := range pred.Terms {
		switch len(term.Any) {
		case 0:
			continue
		case 1:
			terms = append(terms, matchToBSON(term.Any[0]))
		default:
			branches := bson.A{}
			for _, match := range term.Any {
				branches = append(branches, matchToBSON(match))
			}
			terms = append(terms, bson.M{"$or": branches})
		}
	}

	if len(terms) == 0 {
		return bson.M{}
	}
	if len(terms) == 1 {
		if m, ok := terms[0].(bson.M); ok {
			return m
		}
	}
	return bson.M{"$and": terms}
}

func matchToBSON(match models.Match) bson.M {
	doc := bson.M{}
	var exprs bson.A
	for _, clause := range match.Clauses {
		if len(clause.Coalesce) > 0 {
			exprs = append(exprs, exprCondition(clause))
			continue
		}
		switch clause.Op {
		case models.OpEq:
			doc[clause.Field] = clause.Value
		case models.OpEqFold:
			doc[clause.Field] = bson.M{
				"$regex":   "^" + regexp.QuoteMeta(stringValue(clause.Value)) + "$",
				"$options": "i",
			}
		case models.OpContainsFold:
			doc[clause.Field] = bson.M{
				"$regex":   regexp.QuoteMeta(stringValue(clause.Value)),
				"$options": "i",
			}
		case models.OpGte, models.OpGt, models.OpLte:
			op := "$gte"
			switch clause.Op {
			case models.OpGt:
				op = "$gt"
			case models.OpLte:
				op = "$lte"
			}
			if existing, ok := doc[clause.Field].(bson.M); ok {
				existing[op] = clause.Value
			} else {
				doc[clause.Field] = bson.M{op: clause.Value}
			}
		}
	}

	// Coalescing clauses share the single $expr slot, so multiple bounds on
	// the same derived value are ANDed inside it.
	switch len(exprs) {
	case 0:
	case 1:
		doc["$expr"] = exprs[0]
	default:
		doc["$expr"] = bson.M{"$and": exprs}
	}
	return doc
}

// exprCondition compares the first present field among Field and Coalesce
// against the clause value via $ifNull, the aggregation-expression twin of
// the selling-price derivation in the normalizer.
func exprCondition(clause models.Clause) bson.M {
	op := "$eq"
	switch clause.Op {
	case models.OpGte:
		op = "$gte"
	case models.OpGt:
		op = "$gt"
	case models.OpLte:
		op = "$lte"
	}

	derived := interface{}("$" + clause.Coalesce[len(clause.Coalesce)-1])
	for i := len(clause.Coalesce) - 2; i >= 0; i-- {
		derived = bson.M{"$ifNull": bson.A{"$" + clause.Coalesce[i], derived}}
	}
	derived = bson.M{"$ifNull": bson.A{"$" + clause.Field, derived}}

	return bson.M{op: bson.A{derived, clause.Value}}
}

func stringValue(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

func toSortDoc(sort []SortField) bson.D {
	doc := bson.D{}
	for _, s := range sort {
		dir := 1
		if s.Desc {
			dir = -1
		}
		doc = append(doc, bson.E{Key: s.Field, Value: dir})
	}
	return doc
}

func decodeRecords(ctx context.Context, cursor *mongo.Cursor, family models.Family) ([]models.Record, error) {
	wrap := func(n int, at func(int) models.Record) []models.Record {
		records := make([]models.Record, n)
		for i := range records {
			records[i] = at(i)
		}
		return records
	}

	switch family {
	case models.FamilyGeneral:
		var rows []models.GeneralProduct
		if err := cursor.All(ctx, &rows); err != nil {
			return nil, err
		}
		return wrap(len(rows), func(i int) models.Record { return rows[i] }), nil
	case models.FamilyContactLens:
		var rows []models.ContactLens
		if err := cursor.All(ctx, &rows); err != nil {
			return nil, err
		}
		return wrap(len(rows), func(i int) models.Record { return rows[i] }), nil
	case models.FamilyAccessory:
		var rows []models.Accessory
		if err := cursor.All(ctx, &rows); err != nil {
			return nil, err
		}
		return wrap(len(rows), func(i int) models.Record { return rows[i] }), nil
	case models.FamilySkincare:
		var rows []models.Skincare
		if err := cursor.All(ctx, &rows); err != nil {
			return nil, err
		}
		return wrap(len(rows), func(i int) models.Record { return rows[i] }), nil
	case models.FamilyBag:
		var rows []models.Bag
		if err := cursor.All(ctx, &rows); err != nil {
			return nil, err
		}
		return wrap(len(rows), func(i int) models.Record { return rows[i] }), nil
	case models.FamilyMenShoe:
		var rows []models.MenShoe
		if err := cursor.All(ctx, &rows); err != nil {
			return nil, err
		}
		return wrap(len(rows), func(i int) models.Record { return rows[i] }), nil
	case models.FamilyWomenShoe:
		var rows []models.WomenShoe
		if err := cursor.All(ctx, &rows); err != nil {
			return nil, err
		}
		return wrap(len(rows), func(i int) models.Record { return rows[i] }), nil
	}
	return nil, fmt.Errorf("unknown family %q", family)
}

func decodeRecord(res *mongo.SingleResult, family models.Family) (models.Record, error) {
	switch family {
	case models.FamilyGeneral:
		var row models.GeneralProduct
		if err := res.Decode(&row); err != nil {
			return nil, err
		}
		return row, nil
	case models.FamilyContactLens:
		var row models.ContactLens
		if err := res.Decode(&row); err != nil {
			return nil, err
		}
		return row, nil
	case models.FamilyAccessory:
		var row models.Accessory
		if err := res.Decode(&row); err != nil {
			return nil, err
		}
		return row, nil
	case models.FamilySkincare:
		var row models.Skincare
		if err := res.Decode(&row); err != nil {
			return nil, err
		}
		return row, nil
	case models.FamilyBag:
		var row models.Bag
		if err := res.Decode(&row); err != nil {
			return nil, err
		}
		return row, nil
	case models.FamilyMenShoe:
		var row models.MenShoe
		if err := res.Decode(&row); err != nil {
			return nil, err
		}
		return row, nil
	case models.FamilyWomenShoe:
		var row models.WomenShoe
		if err := res.Decode(&row); err != nil {
			return nil, err
		}
		return row, nil
	}
	return nil, fmt.Errorf("unknown family %q", family)
}
