package search

import (
	"context"
	"fmt"

	pb "github.com/qdrant/go-client/qdrant"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Document 知识库文档（检索命中）
type Document struct {
	ID      string
	Score   float32
	Title   string
	Content string
	Source  string
}

// VectorStore Qdrant 向量库客户端
type VectorStore struct {
	collections pb.CollectionsClient
	points      pb.PointsClient
	collection  string
	conn        *grpc.ClientConn
}

// NewVectorStore 连接 Qdrant
func NewVectorStore(addr, collection string) (*VectorStore, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("connecting to qdrant: %w", err)
	}

	return &VectorStore{
		collections: pb.NewCollectionsClient(conn),
		points:      pb.NewPointsClient(conn),
		collection:  collection,
		conn:        conn,
	}, nil
}

// EnsureCollection 创建集合（已存在则跳过）
func (s *VectorStore) EnsureCollection(ctx context.Context, vectorSize uint64) error {
	_, err := s.collections.Get(ctx, &pb.GetCollectionInfoRequest{
		CollectionName: s.collection,
	})
	if err == nil {
		return nil
	}

	_, err = s.collections.Create(ctx, &pb.CreateCollection{
		CollectionName: s.collection,
		VectorsConfig: &pb.VectorsConfig{
			Config: &pb.VectorsConfig_Params{
				Params: &pb.VectorParams{
					Size:     vectorSize,
					Distance: pb.Distance_Cosine,
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("creating collection: %w", err)
	}

	return nil
}

// Search 向量检索，按相似度返回至多 limit 条文档
func (s *VectorStore) Search(ctx context.Context, vector []float32, limit int) ([]Document, error) {
	resp, err := s.points.Search(ctx, &pb.SearchPoints{
		CollectionName: s.collection,
		Vector:         vector,
		Limit:          uint64(limit),
		WithPayload: &pb.WithPayloadSelector{
			SelectorOptions: &pb.WithPayloadSelector_Enable{Enable: true},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("searching points: %w", err)
	}

	docs := make([]Document, 0, len(resp.Result))
	for _, point := range resp.Result {
		docs = append(docs, Document{
			ID:      pointIDString(point.Id),
			Score:   point.Score,
			Title:   payloadString(point.Payload, "title"),
			Content: payloadString(point.Payload, "content"),
			Source:  payloadString(point.Payload, "source"),
		})
	}

	return docs, nil
}

// Close 关闭 gRPC 连接
func (s *VectorStore) Close() error {
	if s.conn != nil {
		return s.conn.Close()
	}
	return nil
}

func pointIDString(id *pb.PointId) string {
	if id == nil {
		return ""
	}
	switch v := id.PointIdOptions.(type) {
	case *pb.PointId_Uuid:
		return v.Uuid
	case *pb.PointId_Num:
		return fmt.Sprintf("%d", v.Num)
	default:
		return ""
	}
}

func payloadString(payload map[string]*pb.Value, key string) string {
	v, ok := payload[key]
	if !ok {
		return ""
	}
	if s, ok := v.Kind.(*pb.Value_StringValue); ok {
		return s.StringValue
	}
	return ""
}
