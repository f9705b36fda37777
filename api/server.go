package api

import (
	"context"
	"log"
	"net"
	"sync"

	"Evasion-Simulator/protos"
	"Evasion-Simulator/simulation"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Server 结构体实现了 evasion.proto 中定义的 EvasionEnvironment 服务。
// 仿真核心是单线程的：这里用一把互斥锁把所有 RPC 串行化，
// 保证外部调度器的并发调用绝不会在一步执行中途重入核心。
type Server struct {
	protos.UnimplementedEvasionEnvironmentServer // 必须嵌入，以实现向前兼容

	env *simulation.Environment
	mu  sync.Mutex
}

// NewServer 是 Server 的构造函数。
func NewServer(env *simulation.Environment) *Server {
	return &Server{env: env}
}

// Step 是 gRPC 的 Step 方法的实现：批量推进 steps 个仿真步。
// steps 为 0 时使用配置的默认速度倍率；非法步数以 InvalidArgument 拒绝。
func (s *Server) Step(ctx context.Context, req *protos.StepRequest) (*protos.StepResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	steps := int(req.GetSteps())
	if steps == 0 {
		steps = s.env.Config().StepsPerTick
	}

	completed, err := s.env.Advance(steps)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%v", err)
	}

	return &protos.StepResponse{
		Snapshot:          mapSnapshotToProto(s.env.Snapshot()),
		EpisodesCompleted: int32(completed),
	}, nil
}

// Reset 是 gRPC 的 Reset 方法的实现：只重开当前一局。
func (s *Server) Reset(ctx context.Context, req *protos.ResetRequest) (*protos.ResetResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.env.Reset()
	return &protos.ResetResponse{Snapshot: mapSnapshotToProto(s.env.Snapshot())}, nil
}

// ResetAll 是 gRPC 的 ResetAll 方法的实现：丢弃全部学习成果。
func (s *Server) ResetAll(ctx context.Context, req *protos.ResetAllRequest) (*protos.ResetAllResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	log.Println("🔄 收到 ResetAll 请求, 正在清空 Q 表与全部统计...")
	s.env.ResetAll()
	return &protos.ResetAllResponse{Snapshot: mapSnapshotToProto(s.env.Snapshot())}, nil
}

// GetSnapshot 是 gRPC 的 GetSnapshot 方法的实现：只读，不推进仿真。
func (s *Server) GetSnapshot(ctx context.Context, req *protos.SnapshotRequest) (*protos.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return mapSnapshotToProto(s.env.Snapshot()), nil
}

// ListenAndServe 在指定地址上启动 gRPC 服务（阻塞直到服务停止）。
// 返回的 *grpc.Server 供调用方做优雅停机。
func ListenAndServe(addr string, env *simulation.Environment) (*grpc.Server, error) {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}

	grpcServer := grpc.NewServer()
	protos.RegisterEvasionEnvironmentServer(grpcServer, NewServer(env))
	log.Printf("🛰️  gRPC 环境服务已就绪, 监听 %s", addr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			log.Printf("❌ gRPC 服务退出: %v", err)
		}
	}()
	return grpcServer, nil
}

// mapSnapshotToProto 是一个辅助函数，用于将核心快照转换为 Protobuf 结构。
func mapSnapshotToProto(snap simulation.Snapshot) *protos.Snapshot {
	obstacles := make([]*protos.Obstacle, len(snap.Obstacles))
	for i, o := range snap.Obstacles {
		obstacles[i] = &protos.Obstacle{
			X:        o.X,
			Y:        o.Y,
			W:        o.W,
			H:        o.H,
			Category: string(o.Category),
		}
	}

	return &protos.Snapshot{
		Fish:             &protos.Vec2{X: snap.Fish.X, Y: snap.Fish.Y},
		Predator:         &protos.Vec2{X: snap.Predator.X, Y: snap.Predator.Y},
		Obstacles:        obstacles,
		Ticks:            int64(snap.Ticks),
		Terminal:         snap.Terminal,
		Epsilon:          snap.Epsilon,
		StatesDiscovered: int64(snap.StatesDiscovered),
		Generation:       int64(snap.Generation),
		BestSurvival:     int64(snap.BestSurvival),
		LastSurvival:     int64(snap.LastSurvival),
		TotalSteps:       snap.TotalSteps,
		ShowSensors:      snap.ShowSensors,
	}
}
