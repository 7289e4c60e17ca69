package client

import (
	"fmt"
	"strings"
)

type QueryParam struct {
	Key   string
	Value string
}

// QueryBuilder keeps query parameters in insertion order. Keys are unique:
// adding an existing key replaces its value in place.
type QueryBuilder struct {
	params []QueryParam
	index  map[string]int
}

func NewQueryBuilder() *QueryBuilder {
	q := &QueryBuilder{}
	q.index = make(map[string]int)
	return q
}

func (q *QueryBuilder) Add(param string, value any) *QueryBuilder {
	v := fmt.Sprintf("%v", value)
	if q.index == nil {
		q.index = make(map[string]int)
	}
	if i, ok := q.index[param]; ok {
		q.params[i].Value = v
		return q
	}
	q.index[param] = len(q.params)
	q.params = append(q.params, QueryParam{Key: param, Value: v})
	return q
}

func (q *QueryBuilder) Len() int {
	if q == nil {
		return 0
	}
	return len(q.params)
}

func (q *QueryBuilder) Params() []QueryParam {
	if q == nil {
		return nil
	}
	params := make([]QueryParam, len(q.params))
	copy(params, q.params)
	return params
}

func (q *QueryBuilder) String() string {
	sb := strings.Builder{}
	for i, p := range q.Params() {
		if i > 0 {
			sb.WriteString("&")
		}
		sb.WriteString(p.Key + "=" + p.Value)
	}
	return sb.String()
}
